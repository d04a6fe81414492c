package model

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Side is the thematic content track a visitor aligns with.
// The wire format calls this "gender" for historical reasons, but it
// selects an image bucket and prompt variant, not a person attribute.
type Side string

const (
	SideMale   Side = "male"
	SideFemale Side = "female"
)

// Language selects which blessing content path is used.
type Language string

const (
	LanguageThai    Language = "th"
	LanguageEnglish Language = "en"
)

// NormalizeLanguage maps any unrecognized language to the Thai path.
func NormalizeLanguage(raw string) Language {
	if Language(raw) == LanguageEnglish {
		return LanguageEnglish
	}
	return LanguageThai
}

// DefaultDisplayName is used when a visitor submits no name.
const DefaultDisplayName = "Fan"

// VisitorDigest is a one-way digest of a visitor's network address,
// used only as a lookup and uniqueness key.
type VisitorDigest string

// DigestAddress computes the VisitorDigest for a network address.
func DigestAddress(address string) VisitorDigest {
	sum := sha256.Sum256([]byte(address))
	return VisitorDigest(hex.EncodeToString(sum[:]))
}

// PlayRecord is one completed play. Created exactly once per visitor,
// never updated, deleted only by an explicit admin action.
type PlayRecord struct {
	IdentityDigest VisitorDigest `json:"identity_digest"`
	Side           Side          `json:"side"`
	DisplayName    string        `json:"display_name"`
	AssetReference string        `json:"asset_reference"`
	BlessingText   string        `json:"blessing_text"`
	PlayedAt       time.Time     `json:"played_at"`
}

// SystemStatus is the singleton flag gating whether new plays are accepted.
type SystemStatus struct {
	IsActive bool `json:"is_active"`
}
