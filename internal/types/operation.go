package types

// Operation names a ledger mutation in logs, metrics and published messages
type Operation string

const (
	OperationInitialize      Operation = "INITIALIZE"
	OperationStake           Operation = "STAKE"
	OperationRedeem          Operation = "REDEEM"
	OperationCooldown        Operation = "COOLDOWN"
	OperationClaimRewards    Operation = "CLAIM_REWARDS"
	OperationTransfer        Operation = "TRANSFER"
	OperationTransferFrom    Operation = "TRANSFER_FROM"
	OperationApprove         Operation = "APPROVE"
	OperationPermit          Operation = "PERMIT"
	OperationConfigureAssets Operation = "CONFIGURE_ASSETS"
)

func (o Operation) String() string {
	return string(o)
}
