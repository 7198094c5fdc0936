// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package disorder

import (
	"strconv"
	"strings"

	"github.com/luxfi/log"

	"github.com/nyxanic/disorderd/chaos"
)

// Observability record prefixes. Off-chain indexers match on these.
const (
	ProofValidPrefix = "Nyxanic: zk-Disorder Proof Valid. Root: "
	EncryptedPrefix  = "Nyxanic: Disorder Encrypted Output :: "
	DecryptedPrefix  = "Disorder: Decrypted Output :: "
)

// Recorder receives one observability record per successful call. Recording
// has no effect on the call result.
type Recorder interface {
	Record(message string)
}

type nopRecorder struct{}

func (nopRecorder) Record(string) {}

// LogRecorder writes records to a logger only.
type LogRecorder struct {
	Log log.Logger
}

func (r LogRecorder) Record(message string) {
	r.Log.Info(message)
}

// ProofValidRecord is emitted after a proof verifies.
func ProofValidRecord(root chaos.Hash) string {
	return ProofValidPrefix + formatBytes(root[:])
}

// EncryptedRecord is emitted after encryptSim.
func EncryptedRecord(ciphertext chaos.Block) string {
	return EncryptedPrefix + formatBlock(ciphertext)
}

// DecryptedRecord is emitted after decryptSim.
func DecryptedRecord(plaintext chaos.Block) string {
	return DecryptedPrefix + formatBlock(plaintext)
}

// Values render as decimal lists, "[5, 6]".
func formatBytes(b []byte) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range b {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatUint(uint64(v), 10))
	}
	sb.WriteByte(']')
	return sb.String()
}

func formatBlock(b chaos.Block) string {
	return "[" + strconv.FormatUint(b[0], 10) + ", " + strconv.FormatUint(b[1], 10) + "]"
}
