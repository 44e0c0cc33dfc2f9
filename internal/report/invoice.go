package report

import (
	"fmt"

	"gymkeeper/internal/common"
	"gymkeeper/internal/model"
)

// Invoice lists the fees being billed to one member: either everything they
// still owe, or one specific fee record.
type Invoice struct {
	Member model.Member
	Issued model.Date
	Title  string
	Lines  []model.Fee
	Total  float64
}

// BuildInvoice builds an invoice for a member. With an empty feeID the
// invoice covers all of the member's unpaid fees; otherwise it covers just
// the named fee, paid or not.
func BuildInvoice(members []model.Member, fees []model.Fee, memberID, feeID string, issued model.Date) (*Invoice, error) {
	var member *model.Member
	for i := range members {
		if members[i].ID == memberID {
			member = &members[i]
			break
		}
	}
	if member == nil {
		return nil, fmt.Errorf("member %s: %w", memberID, common.ErrNotFound)
	}

	inv := &Invoice{
		Member: *member,
		Issued: issued,
		Title:  "TAX INVOICE / FEE DUE",
	}

	if feeID != "" {
		for i := range fees {
			if fees[i].ID == feeID {
				inv.Lines = []model.Fee{fees[i]}
				inv.Title = fmt.Sprintf("FEE INVOICE FOR %s", fees[i].Month().String())
				break
			}
		}
		if len(inv.Lines) == 0 {
			return nil, fmt.Errorf("fee %s: %w", feeID, common.ErrNotFound)
		}
	} else {
		for i := range fees {
			if fees[i].MemberID == memberID && !fees[i].IsPaid() {
				inv.Lines = append(inv.Lines, fees[i])
			}
		}
	}

	for i := range inv.Lines {
		inv.Total += inv.Lines[i].Amount
	}
	return inv, nil
}
