// Package crypto implements textbook RSA over 64-bit integers together with
// the helpers the demo needs around it.
//
// # Key Generation
//
// [GenerateKeypair] picks two prime indices from a [RandSource], maps them
// through the nth-prime enumerator and derives n, the totient, the public
// exponent and the private exponent. The public exponent is the first entry
// of an ordered candidate list that is coprime with the totient
// ([SelectExponent]). A prime pair that yields no usable exponent or no
// inverse is discarded and a new pair is drawn, up to a fixed number of
// attempts.
//
// The random source is always passed in explicitly. [NewSeededSource] and
// [NewPassphraseSource] build reproducible sources; the latter stretches a
// passphrase with HKDF-SHA-512 into a ChaCha8 seed.
//
// # Transform
//
// [Transform] raises every block to a power modulo n. Encryption and
// decryption are the same call with e or d as the exponent.
//
// # Sealing
//
// [SealArtifact] signs a byte artifact with a fresh ML-DSA-65 key and
// [VerifySeal] checks it. The signing key is discarded after use, so a seal
// detects corruption of the artifact; it does not identify who produced it.
//
// # Security
//
// None of this is secure. The primes are a few thousand in size, there is
// no padding and the random sources are not cryptographic.
package crypto
