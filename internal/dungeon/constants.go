package dungeon

// Reward coefficients, all scaled by tier and committed stamina.
// A failed run pays out a consolation fraction and refunds half the stamina.
const (
	// SuccessXPPerTier is XP per tier per stamina point on success
	SuccessXPPerTier = 50

	// SuccessCoinsPerTier is coins per tier per stamina point on success
	SuccessCoinsPerTier = 25

	// FailureXPPerTier is XP per tier per stamina point on failure,
	// halved again at the end (integer division)
	FailureXPPerTier = 25

	// FailureCoinsPerTier is coins per tier per stamina point on failure
	FailureCoinsPerTier = 10
)
