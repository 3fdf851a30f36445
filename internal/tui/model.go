// Package tui is an interactive what-if explorer for the investment engine:
// adjust a parameter slider and watch NPV, IRR and the yearly cash flows
// recompute in place.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/taxlab/bizcalc/internal/calculation"
	"github.com/taxlab/bizcalc/internal/domain"
	"github.com/taxlab/bizcalc/internal/output"
)

// Slider order; keep in sync with applySliders.
const (
	sliderDiscount = iota
	sliderGrowth
	sliderCostInflation
	sliderOperatingCost
	sliderDebtRatio
	sliderCount
)

// Model is the bubbletea model for the explorer.
type Model struct {
	input   *domain.InvestmentAnalysisInput
	engine  *calculation.InvestmentEngine
	sliders []slider
	focus   int
	result  *domain.InvestmentAnalysisResult
	flows   table.Model
	err     error
}

// NewModel builds the explorer around a validated investment input.
func NewModel(input *domain.InvestmentAnalysisInput) Model {
	adv := input.AdvancedOrDefault()

	sliders := make([]slider, sliderCount)
	sliders[sliderDiscount] = newSlider("할인율", input.DiscountRate, 0, 20, 0.5, "%")
	sliders[sliderGrowth] = newSlider("매출 성장률", adv.RevenueGrowthRate, -20, 30, 0.5, "%")
	sliders[sliderCostInflation] = newSlider("원가 상승률", adv.CostInflationRate, 0, 20, 0.5, "%")
	sliders[sliderOperatingCost] = newSlider("운영비용율", input.OperatingCostRate, 0, 100, 1, "%")
	sliders[sliderDebtRatio] = newSlider("추가 차입비율", adv.DebtRatio, 0, 90, 5, "%")
	sliders[0].focused = true

	columns := []table.Column{
		{Title: "연차", Width: 4},
		{Title: "매출", Width: 16},
		{Title: "순현금흐름", Width: 16},
		{Title: "누적", Width: 16},
		{Title: "DSCR", Width: 6},
	}
	flows := table.New(
		table.WithColumns(columns),
		table.WithHeight(10),
		table.WithFocused(false),
	)

	m := Model{
		input:   input,
		engine:  calculation.NewInvestmentEngine(nil),
		sliders: sliders,
		flows:   flows,
	}
	m.recompute()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.setFocus(m.focus - 1)
		case "down", "j":
			m.setFocus(m.focus + 1)
		case "left", "h":
			m.sliders[m.focus].decrement()
			m.recompute()
		case "right", "l":
			m.sliders[m.focus].increment()
			m.recompute()
		}
	}
	return m, nil
}

func (m *Model) setFocus(idx int) {
	if idx < 0 {
		idx = len(m.sliders) - 1
	}
	if idx >= len(m.sliders) {
		idx = 0
	}
	m.sliders[m.focus].focused = false
	m.focus = idx
	m.sliders[m.focus].focused = true
}

// applySliders copies the slider values back onto a fresh input.
func (m *Model) applySliders() *domain.InvestmentAnalysisInput {
	input := *m.input
	adv := m.input.AdvancedOrDefault()

	input.DiscountRate = m.sliders[sliderDiscount].value
	adv.RevenueGrowthRate = m.sliders[sliderGrowth].value
	adv.CostInflationRate = m.sliders[sliderCostInflation].value
	input.OperatingCostRate = m.sliders[sliderOperatingCost].value
	adv.DebtRatio = m.sliders[sliderDebtRatio].value

	input.Advanced = &adv
	return &input
}

func (m *Model) recompute() {
	result, err := m.engine.Analyze(m.applySliders())
	m.err = err
	if err != nil {
		m.result = nil
		return
	}
	m.result = result

	rows := make([]table.Row, 0, len(result.CashFlows))
	for i, f := range result.CashFlows {
		dscr := "-"
		if i < len(result.DSCR) && result.DSCR[i] != 0 {
			dscr = fmt.Sprintf("%.2f", result.DSCR[i])
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", f.Year),
			output.FormatKRWFloat(f.Revenue),
			output.FormatKRWFloat(f.NetCashFlow),
			output.FormatKRWFloat(f.CumulativeCashFlow),
			dscr,
		})
	}
	m.flows.SetRows(rows)
}

// View implements tea.Model.
func (m Model) View() string {
	var parts []string
	parts = append(parts, titleStyle.Render("투자 타당성 시뮬레이터"))

	for i := range m.sliders {
		parts = append(parts, m.sliders[i].render())
	}
	parts = append(parts, "")

	if m.err != nil {
		parts = append(parts, negativeStyle.Render("오류: "+m.err.Error()))
	} else if m.result != nil {
		parts = append(parts, m.metricCards())
		parts = append(parts, "")
		parts = append(parts, m.flows.View())
	}

	parts = append(parts, helpStyle.Render("↑/↓ 항목 이동  ←/→ 값 조정  q 종료"))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) metricCards() string {
	r := m.result

	payback := "미회수"
	if r.PaybackPeriod != domain.PaybackNotRecovered {
		payback = fmt.Sprintf("%d년차", r.PaybackPeriod)
	}

	npvStyle := cardValueStyle
	if r.NPV < 0 {
		npvStyle = negativeStyle
	}

	cards := []string{
		m.card("NPV", npvStyle.Render(output.FormatKRWFloat(r.NPV))),
		m.card("IRR", cardValueStyle.Render(output.FormatPercent(r.IRR))),
		m.card("회수기간", cardValueStyle.Render(payback)),
		m.card("ROI", cardValueStyle.Render(fmt.Sprintf("%.1f%%", r.ROI))),
		m.card("PI", cardValueStyle.Render(fmt.Sprintf("%.2f", r.ProfitabilityIndex))),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (m Model) card(title, value string) string {
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		cardTitleStyle.Render(title), value))
}
