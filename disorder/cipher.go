// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package disorder

import "github.com/nyxanic/disorderd/chaos"

// Cipher applies one block transform under (key, iv). Every call derives its
// own cipher state; nothing carries over between calls.
type Cipher interface {
	EncryptBlock(key, iv, plaintext chaos.Block) chaos.Block
	DecryptBlock(key, iv, ciphertext chaos.Block) chaos.Block
}

// ChaosCipher is the FractCipher adapter.
type ChaosCipher struct{}

var _ Cipher = ChaosCipher{}

func (ChaosCipher) EncryptBlock(key, iv, plaintext chaos.Block) chaos.Block {
	return chaos.New(key, iv).Encrypt(plaintext)
}

func (ChaosCipher) DecryptBlock(key, iv, ciphertext chaos.Block) chaos.Block {
	return chaos.New(key, iv).Decrypt(ciphertext)
}
