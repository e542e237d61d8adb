package bluestein

import "math"

// chirpSequence returns h(l) = exp(s*i*pi*(l^2 mod 2n)/n) for l in [0,n),
// the Bluestein pre/post-factor for a length-n transform. s is +1 for a
// forward DFT and -1 for an inverse one (spec §4.6: "sign opposite the
// DFT direction" — the chirp's own sign is the opposite of the exponent
// sign fft1d.Plan uses internally for the same direction). Reducing l^2
// modulo 2n before scaling by pi/n keeps the phase's magnitude bounded
// for large l without changing the angle, since exp(i*pi*(l^2+2n)/n) ==
// exp(i*pi*l^2/n) * exp(2*pi*i) == exp(i*pi*l^2/n).
func chirpSequence(n int, inverse bool) []complex128 {
	sign := 1.0
	if inverse {
		sign = -1.0
	}
	h := make([]complex128, n)
	for l := 0; l < n; l++ {
		lm := (l * l) % (2 * n)
		angle := sign * math.Pi * float64(lm) / float64(n)
		sin, cos := math.Sincos(angle)
		h[l] = complex(cos, sin)
	}
	return h
}

// embedChirp places h (length n) into a length-m buffer (m a power of two
// >= 2n-1) with zeros in the middle and the tail reflected, per the
// corrected padding formula from spec §9 (zeros on [n, m-n], reflection
// on [m-n+1, m) using h[l] itself, not the erroneous h[m-l] some texts
// give): h2[0:n) = h, h2[n:m-n] = 0, h2[m-l] = h[l] for l in [1, n).
func embedChirp(h []complex128, m int) []complex128 {
	n := len(h)
	h2 := make([]complex128, m)
	copy(h2, h)
	for l := 1; l < n; l++ {
		h2[m-l] = h[l]
	}
	return h2
}

func conj(z complex128) complex128 {
	return complex(real(z), -imag(z))
}
