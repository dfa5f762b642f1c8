package types

import "encoding/binary"

const (
	// ModuleName defines the module name
	ModuleName = "clp"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// SharesDecimals is the number of fractional decimals carried by
	// participation shares. It matches the native asset precision, so
	// share amounts are reported without any conversion.
	SharesDecimals = 24
)

// Store key prefixes. Pools are keyed by their reserve-token account id;
// each pool's share sub-mapping derives its prefix from the same bytes.
var (
	RegistryKey      = []byte{0x00} // key for the registry singleton
	ParamsKey        = []byte{0x01} // key for fee parameters
	PoolKeyPrefix    = []byte{0x02} // prefix for pool records
	ShareKeyPrefix   = []byte{0x03} // prefix for per-account share balances
	PendingKeyPrefix = []byte{0x04} // prefix for pending swap records
	PendingSeqKey    = []byte{0x05} // key for the pending swap sequence
)

// shareKeySep separates the token id from the owner id in share keys.
// Account ids cannot contain '/', so the concatenation is collision free.
const shareKeySep = '/'

// PoolKey returns the store key for the pool of the given reserve token.
func PoolKey(token string) []byte {
	return append(PoolKeyPrefix, []byte(token)...)
}

// SharePoolPrefix returns the prefix under which all share balances of a
// pool are stored.
func SharePoolPrefix(token string) []byte {
	key := append(ShareKeyPrefix, []byte(token)...)
	return append(key, shareKeySep)
}

// ShareKey returns the store key for one account's share balance in the
// pool of the given reserve token.
func ShareKey(token, owner string) []byte {
	return append(SharePoolPrefix(token), []byte(owner)...)
}

// PendingKey returns the store key for a pending swap record.
func PendingKey(id uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, id)
	return append(PendingKeyPrefix, bz...)
}
