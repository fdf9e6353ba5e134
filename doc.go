// Package textbookrsa is a classroom demonstration of textbook RSA.
//
// A message over the alphabet A–Z plus space is encoded into two-character
// integer blocks, a small RSA keypair is generated from two randomly chosen
// primes, and the blocks are encrypted with the public key. Decrypting with
// the private key and decoding the blocks recovers the message.
//
// Basic usage:
//
//	kp, err := textbookrsa.GenerateKeypair(textbookrsa.WithSeed(42))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ct, err := kp.EncryptMessage("HI THERE")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	text, err := kp.DecryptMessage(ct)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(text) // HI THERE
//
// The keys are tiny, there is no padding and the default random source is
// not cryptographic. Do not use this package to protect anything.
package textbookrsa
