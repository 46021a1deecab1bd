package engine

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// ComputePosition derives an asset's position from its transaction ledger,
// considering only transactions dated on or before asOf. The ledger may be
// passed in any order; it is sorted by date with ties broken by insertion id.
//
// The average cost is FIFO-approximate: the remaining quantity is priced as if
// the earliest purchases were the ones still held, ignoring which lots the
// sells actually consumed. Realized gain, by contrast, replays sells against
// buy lots chronologically. The asymmetry is deliberate and matches the
// figures users already reconcile against.
//
// marketPrice, when available, feeds the unrealized gain; a nil price degrades
// to zero rather than failing the whole computation.
func ComputePosition(ledger []TransactionRecord, asOf time.Time, marketPrice *float64) (Position, error) {
	records := make([]TransactionRecord, 0, len(ledger))
	for _, tx := range ledger {
		if tx.Date.After(asOf) {
			continue
		}
		records = append(records, tx)
	}
	sort.SliceStable(records, func(i, j int) bool {
		if !records[i].Date.Equal(records[j].Date) {
			return records[i].Date.Before(records[j].Date)
		}
		return records[i].ID < records[j].ID
	})

	var pos Position
	if len(records) == 0 {
		return pos, nil
	}

	var qty, invested, divested float64
	for _, tx := range records {
		switch tx.Kind {
		case TransactionBuy:
			qty += tx.Quantity
			invested += tx.TotalValue
		case TransactionSell:
			qty -= tx.Quantity
			divested += tx.TotalValue
		}
	}

	pos.Quantity = Round6(qty)
	if pos.Quantity < 0 {
		return Position{}, &IntegrityError{
			AssetID: records[0].AssetID,
			Reason:  fmt.Sprintf("ledger implies negative quantity %.6f", pos.Quantity),
		}
	}
	pos.TotalInvested = Round2(invested)
	pos.TotalDivested = Round2(divested)

	pos.AverageCost = averageCostFIFO(records, pos.Quantity)
	pos.CurrentValue = Round2(pos.Quantity * pos.AverageCost)

	realized, err := realizedGainFIFO(records)
	if err != nil {
		return Position{}, err
	}
	pos.RealizedGainLoss = realized

	if pos.Quantity > 0 && marketPrice != nil {
		pos.UnrealizedGainLoss = Round2((*marketPrice - pos.AverageCost) * pos.Quantity)
	}

	return pos, nil
}

// averageCostFIFO walks buys oldest-first, consuming the current quantity
// against them. Records must already be sorted.
func averageCostFIFO(records []TransactionRecord, quantity float64) float64 {
	if quantity <= 0 {
		return 0
	}

	remaining := quantity
	var cost float64
	for _, tx := range records {
		if tx.Kind != TransactionBuy {
			continue
		}
		if remaining <= 0 {
			break
		}
		consumed := math.Min(tx.Quantity, remaining)
		cost += consumed * tx.UnitPrice
		remaining -= consumed
	}

	return Round2(cost / quantity)
}

type buyLot struct {
	quantity  float64
	unitPrice float64
}

// realizedGainFIFO replays the ledger chronologically, consuming buy lots
// dated on or before each sell and accumulating proceeds minus cost basis.
func realizedGainFIFO(records []TransactionRecord) (float64, error) {
	var lots []buyLot
	var realized float64

	for _, tx := range records {
		switch tx.Kind {
		case TransactionBuy:
			lots = append(lots, buyLot{quantity: tx.Quantity, unitPrice: tx.UnitPrice})
		case TransactionSell:
			need := tx.Quantity
			var basis float64
			for i := range lots {
				if need <= 0 {
					break
				}
				consumed := math.Min(lots[i].quantity, need)
				basis += consumed * lots[i].unitPrice
				lots[i].quantity -= consumed
				need -= consumed
			}
			if need > 1e-9 {
				return 0, &IntegrityError{
					AssetID: tx.AssetID,
					Reason: fmt.Sprintf("sell of %.6f on %s exceeds quantity available at that date",
						tx.Quantity, tx.Date.Format("2006-01-02")),
				}
			}
			realized += tx.TotalValue - basis
		}
	}

	return Round2(realized), nil
}
