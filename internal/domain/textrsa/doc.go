// Package textrsa implements textbook RSA over text: every symbol of a message is
// mapped to an integer code, each code is raised to a key exponent modulo the key
// modulus, and the resulting integers are serialized as a '#'-delimited string.
//
// The package is a pedagogical integer-coding exercise. There is no padding, no
// timing-attack resistance and no key generation. Decoding deliberately wraps
// out-of-range codes back into the alphabet, so a wrong key produces a wrong but
// printable string instead of an error. That leniency is a known weakness.
package textrsa
