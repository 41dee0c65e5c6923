// Package sil estimates the probability of failure on demand of a safety
// instrumented system. Elements of a given type fail independently or all
// together through a common cause; votings combine them k-out-of-n.
// Every failure mode is exponentially distributed, 1 - e^{-rate t}.
package sil
