// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package auth

// Note: Registry will error during initialization if a duplicate ID is
// assigned. We explicitly assign IDs to avoid accidental remapping.
const (
	// Auth TypeIDs (the wire auth tag).
	PQID     uint8 = 0
	HybridID uint8 = 1

	PQKey     = "pq"
	HybridKey = "hybrid"
)
