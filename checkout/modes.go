package checkout

import "github.com/Rovan44/shopfront-api/models"

// ModeKind classifies a payment mode by its required checkout fields, so the
// orchestrator never branches on raw label strings.
type ModeKind int

const (
	KindCashOnDelivery ModeKind = iota
	KindUPI
	KindCard
	KindNetBanking
	KindWallet
	KindOther
)

func (k ModeKind) String() string {
	switch k {
	case KindCashOnDelivery:
		return "cod"
	case KindUPI:
		return "upi"
	case KindCard:
		return "card"
	case KindNetBanking:
		return "netbanking"
	case KindWallet:
		return "wallet"
	default:
		return "online"
	}
}

// RequiresTransactionID reports whether the kind needs a transaction id at
// submission. Cash On Delivery is the only kind that must not carry one; it
// needs a delivery address instead.
func (k ModeKind) RequiresTransactionID() bool {
	return k != KindCashOnDelivery
}

func (k ModeKind) RequiresDeliveryAddress() bool {
	return k == KindCashOnDelivery
}

func KindOf(mode models.PaymentMode) ModeKind {
	switch mode.Mode {
	case "Cash On Delivery":
		return KindCashOnDelivery
	case "UPI":
		return KindUPI
	case "Debit/Credit Card":
		return KindCard
	case "Net Banking":
		return KindNetBanking
	case "Wallet":
		return KindWallet
	default:
		return KindOther
	}
}
