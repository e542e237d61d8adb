// Package fft1d implements the power-of-two radix-2 Cooley-Tukey FFT that
// the bluestein package's chirp-z transform and the compute package's GPU
// dispatch planning both build on.
//
// A Plan precomputes the roots-of-unity table and the bit-reversal
// permutation for one fixed transform length N, the way andewx-gofft's
// package-level Prepare(N) caches them into global Es/perms maps — except
// here that state lives on the Plan value itself, so two callers using
// different sizes (or running concurrently) never contend over shared
// mutable package state.
//
// Dispatch does not execute anything; it reports which of the two GPU
// dispatch strategies described in spec §4.7 — a single shared-memory
// work group per batch, or a bit-reversal pass followed by staged
// global-memory butterfly passes — a real device would use for a given
// set of batches, along with the work-group and pass counts that follow
// from that choice. The compute package's real dispatch logic mirrors
// this decision; fft1d only computes it in the abstract so it can be
// tested without a device.
package fft1d
