package types

// Event types emitted through the module logger.
const (
	EventTypePoolCreated       = "pool_created"
	EventTypeAddLiquidity      = "add_liquidity"
	EventTypeWithdrawLiquidity = "withdraw_liquidity"
	EventTypeSwap              = "swap"
	EventTypeSwapPending       = "swap_pending"
	EventTypeSwapCommitted     = "swap_committed"
	EventTypeSwapAbandoned     = "swap_abandoned"
	EventTypeRollback          = "transfer_rollback"
	EventTypeOwnerChanged      = "owner_changed"
	EventTypeFeeDstChanged     = "fee_dst_changed"
)

// Event attribute keys.
const (
	AttributeKeyToken     = "token"
	AttributeKeyTokenFrom = "token_from"
	AttributeKeyTokenTo   = "token_to"
	AttributeKeyCaller    = "caller"
	AttributeKeyRecipient = "recipient"
	AttributeKeyAmountIn  = "amount_in"
	AttributeKeyAmountOut = "amount_out"
	AttributeKeyShares    = "shares"
	AttributeKeyNear      = "near"
	AttributeKeyPendingID = "pending_id"
)
