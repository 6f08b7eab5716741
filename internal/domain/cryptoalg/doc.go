// Package cryptoalg defines the processor interfaces for the cryptographic operations of
// the service: textbook RSA over text and the standard RSA key material it is fed with.
package cryptoalg
