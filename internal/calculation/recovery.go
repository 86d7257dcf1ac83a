package calculation

import (
	"github.com/LipeHeitz/pricing-k2/internal/domain"
	"github.com/shopspring/decimal"
)

// purchaseRecoveryBlackout is the number of trailing installment periods
// that receive no income-tax recovery under purchase operations. The
// recognition timing near closing makes the recovery unusable there.
// TODO: confirm with the tax desk whether 4 holds for terms other than
// the 28/40/52/64 purchase grids.
const purchaseRecoveryBlackout = 4

// SimulateRecovery rolls the installment stream forward from the
// investor's side: each period the balance compounds at the CDI monthly
// rate, pays the installment out and takes partial income-tax recovery
// back in. The period-0 balance is the CDI-discounted present value of
// the installments net of applicable recovery, so the trajectory closes
// near zero. Investor IRR is taken over the net-recovery series with
// period 0 replaced by the original principal for headline comparison.
func SimulateRecovery(schedule *domain.CashFlowSchedule, params *domain.SimulationParameters) (*domain.RecoverySchedule, error) {
	one := decimal.NewFromInt(1)
	growth := one.Add(params.CDIMonthlyRate)
	keep := one.Sub(params.RecoveryRate)

	n := schedule.Installments

	// Present value of the outflows the investor actually bears.
	initial := decimal.Zero
	for p := 1; p <= n; p++ {
		net := schedule.Periods[p].Gross
		if !recoveryBlackout(params.OperationType, p, n) {
			net = net.Mul(keep)
		}
		initial = initial.Add(net.Div(growth.Pow(decimal.NewFromInt(int64(p)))))
	}

	rows := make([]domain.RecoveryRow, 0, n+1)
	rows = append(rows, domain.RecoveryRow{
		Period:         0,
		OpeningBalance: initial,
		ClosingBalance: initial,
		NetRecovery:    params.Principal,
	})

	totalRecovered := decimal.Zero
	balance := initial
	for p := 1; p <= n; p++ {
		opening := balance.Mul(growth)
		installment := schedule.Periods[p].Gross.Neg()
		recovery := decimal.Zero
		if !recoveryBlackout(params.OperationType, p, n) {
			recovery = schedule.Periods[p].Gross.Mul(params.RecoveryRate)
		}
		balance = opening.Add(installment).Add(recovery)
		totalRecovered = totalRecovered.Add(recovery)
		rows = append(rows, domain.RecoveryRow{
			Period:         p,
			OpeningBalance: opening,
			Installment:    installment,
			Recovery:       recovery,
			ClosingBalance: balance,
			NetRecovery:    installment.Add(recovery),
		})
	}

	flows := make([]decimal.Decimal, len(rows))
	for i, row := range rows {
		flows[i] = row.NetRecovery
	}
	investorIRR, err := NetIRR(flows)
	if err != nil {
		return nil, err
	}

	return &domain.RecoverySchedule{
		Rows:           rows,
		InitialBalance: initial,
		TotalRecovered: totalRecovered,
		InvestorIRR:    investorIRR,
	}, nil
}

// recoveryBlackout reports whether installment period p falls in the
// trailing purchase window with no recovery.
func recoveryBlackout(op domain.OperationType, p, installments int) bool {
	return op == domain.OperationPurchase && p >= installments-purchaseRecoveryBlackout+1
}
