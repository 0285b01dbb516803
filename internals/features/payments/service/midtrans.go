package service

import (
	"errors"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

/* =========================================================
   Midtrans Snap client
========================================================= */

var SnapClient snap.Client

// InitMidtrans must be called at bootstrap.
func InitMidtrans(serverKey string, useProduction bool) {
	if useProduction {
		SnapClient.New(serverKey, midtrans.Production)
	} else {
		SnapClient.New(serverKey, midtrans.Sandbox)
	}
}

type PaymentIntentInput struct {
	OrderID      string
	AmountIDR    int
	CustomerName string
	Email        string
	ItemName     string
}

// GenerateSnapToken creates the gateway transaction for a booking and
// returns the Snap token plus the hosted checkout URL.
func GenerateSnapToken(in PaymentIntentInput) (string, string, error) {
	if in.AmountIDR <= 0 {
		return "", "", errors.New("invalid amount")
	}
	if in.OrderID == "" {
		return "", "", errors.New("order id is required")
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  in.OrderID,
			GrossAmt: int64(in.AmountIDR),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: in.CustomerName,
			Email: in.Email,
		},
		CreditCard: &snap.CreditCardDetails{Secure: true},
		Items: &[]midtrans.ItemDetails{
			{
				ID:       in.OrderID,
				Price:    int64(in.AmountIDR),
				Qty:      1,
				Name:     itemName(in.ItemName),
				Category: "Session",
			},
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}

func itemName(name string) string {
	if name == "" {
		return "Training session"
	}
	if len(name) > 50 {
		return name[:50]
	}
	return name
}
