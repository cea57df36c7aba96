package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"
	"strings"

	"cotador_telecom/internal/domain/authz"
	"cotador_telecom/internal/domain/entities"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var csvHeader = []string{"tipo", "descricao", "quantidade", "setup", "mensal", "observacao"}

// Export renders the proposal as CSV with pt-BR formatted amounts: one row
// per line item, then totals and the negotiation history.
func (u *ProposalUseCase) Export(ctx context.Context, principal authz.Principal, id string) ([]byte, error) {
	p, err := u.Get(ctx, principal, id)
	if err != nil {
		return nil, err
	}
	out, err := renderProposalCSV(p)
	if err != nil {
		log.Error().Err(err).Str("proposal_id", p.ID).Msg("[proposal][usecase] export failed")
		return nil, err
	}
	return out, nil
}

func renderProposalCSV(p entities.Proposal) ([]byte, error) {
	printer := message.NewPrinter(language.BrazilianPortuguese)
	brl := func(d decimal.Decimal) string {
		return printer.Sprintf("R$ %.2f", d.Round(2).InexactFloat64())
	}
	pct := func(d decimal.Decimal) string {
		return printer.Sprintf("%.2f%%", d.InexactFloat64())
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = ';'

	rows := [][]string{
		{"proposta", csvText(p.Number), "", "", "", csvText(p.Client.Name)},
		csvHeader,
	}
	for _, it := range p.LineItems {
		note := ""
		if it.RequiresManualQuote {
			note = "a combinar"
		}
		rows = append(rows, []string{"item", csvText(it.Description), strconv.Itoa(it.Quantity), brl(it.SetupFee), brl(it.MonthlyFee), note})
	}

	totals := p.Totals()
	rows = append(rows, []string{"total", "Total de tabela", "", brl(totals.TotalSetup), brl(totals.TotalMonthly), ""})
	for _, r := range p.Negotiation.Rounds {
		rows = append(rows, []string{"rodada", "Rodada " + strconv.Itoa(r.Number), "", "", brl(r.AppliedMonthlyTotal), pct(r.DiscountPercent) + " " + r.Reason})
	}
	if d := p.Negotiation.Director; d != nil {
		rows = append(rows, []string{"diretor", "Desconto da diretoria", "", "", brl(d.AppliedMonthlyTotal), pct(d.DiscountPercent) + " " + d.Reason})
	}
	rows = append(rows, []string{"final", "Total negociado", "", brl(totals.TotalSetup), brl(p.FinalMonthlyTotal()), ""})

	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// csvText keeps spreadsheets from evaluating user text as a formula.
func csvText(s string) string {
	if s != "" && strings.ContainsRune("=+-@\t\r", rune(s[0])) {
		return "'" + s
	}
	return s
}
