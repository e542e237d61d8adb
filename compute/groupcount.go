package compute

// groupCount2D returns the number of work groups of size group needed to
// cover extent, rounding up in each dimension — the Go form of the
// teacher's com/group_count.h helper that compute.cpp calls before every
// vkCmdDispatch.
func groupCount2D(extent, group [2]int) [2]int {
	return [2]int{
		ceilDiv(extent[0], group[0]),
		ceilDiv(extent[1], group[1]),
	}
}

func ceilDiv(n, d int) int {
	if n <= 0 || d <= 0 {
		return 0
	}
	return (n + d - 1) / d
}
