// Package tui implements the interactive customer segmentation dashboard.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/Khushibung05/KMeans/internal/config"
	"github.com/Khushibung05/KMeans/pkg/dataset"
	"github.com/Khushibung05/KMeans/pkg/segment"
)

// Control focus order.
const (
	focusFeature1 = iota
	focusFeature2
	focusK
	focusSeed
	focusRun
	focusCount
)

// Model is the BubbleTea model for the dashboard.
type Model struct {
	cfg    *config.Config
	logger *zap.Logger

	// File stage
	pathInput textinput.Model
	loadErr   error

	// Loaded dataset and controls
	ds       *dataset.Dataset
	path     string
	numeric  []string
	feature1 int // index into numeric
	feature2 int // index into numeric, never equal to feature1
	k        int
	seed     textinput.Model
	focus    int

	// Last run
	res     *segment.Result
	summary table.Model
	runErr  error

	width    int
	height   int
	quitting bool
}

// Message types
type datasetMsg struct {
	ds   *dataset.Dataset
	path string
}
type loadErrMsg struct{ err error }
type resultMsg struct{ res *segment.Result }
type runErrMsg struct{ err error }

// New creates the dashboard model. When csvPath is non-empty the dataset is
// loaded on startup instead of prompting for a path.
func New(cfg *config.Config, logger *zap.Logger, csvPath string) Model {
	path := textinput.New()
	path.Placeholder = "path/to/customers.csv"
	path.Width = 48
	path.Focus()
	if csvPath != "" {
		path.SetValue(csvPath)
	}

	seed := textinput.New()
	seed.Placeholder = "42"
	seed.CharLimit = 19
	seed.Width = 12
	seed.SetValue(strconv.FormatInt(cfg.DefaultSeed, 10))

	return Model{
		cfg:       cfg,
		logger:    logger,
		pathInput: path,
		seed:      seed,
		k:         cfg.DefaultK,
	}
}

// Init loads the dataset immediately when a path was provided on the
// command line.
func (m Model) Init() tea.Cmd {
	if m.pathInput.Value() != "" {
		return loadDataset(m.pathInput.Value())
	}
	return textinput.Blink
}

func loadDataset(path string) tea.Cmd {
	return func() tea.Msg {
		ds, err := dataset.LoadFile(path)
		if err != nil {
			return loadErrMsg{err}
		}
		if err := ds.EnsureClusterable(); err != nil {
			return loadErrMsg{err}
		}
		return datasetMsg{ds: ds, path: path}
	}
}

func (m Model) runClustering() tea.Cmd {
	ds := m.ds
	f1 := m.numeric[m.feature1]
	f2 := m.numeric[m.feature2]
	seedText := m.seed.Value()
	cfg := segment.Config{K: m.k, MaxIter: m.cfg.MaxIterations}
	logger := m.logger

	return func() tea.Msg {
		seed, err := strconv.ParseInt(strings.TrimSpace(seedText), 10, 64)
		if err != nil {
			return runErrMsg{fmt.Errorf("random seed must be an integer, got %q", seedText)}
		}
		cfg.Seed = seed

		res, err := segment.Run(ds, f1, f2, cfg)
		if err != nil {
			logger.Warn("clustering run failed", zap.Error(err))
			return runErrMsg{err}
		}
		logger.Info("clustering run complete",
			zap.String("run_id", res.RunID),
			zap.String("feature1", f1),
			zap.String("feature2", f2),
			zap.Int("k", cfg.K),
			zap.Int64("seed", seed),
			zap.Int("rows", len(res.Assignments)),
			zap.Float64("inertia", res.Inertia),
		)
		return resultMsg{res}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case datasetMsg:
		m.ds = msg.ds
		m.path = msg.path
		m.numeric = msg.ds.NumericColumns()
		m.feature1 = 0
		m.feature2 = 1
		m.loadErr = nil
		m.runErr = nil
		m.res = nil
		m.focus = focusFeature1
		m.pathInput.Blur()
		m.logger.Info("dataset loaded",
			zap.String("path", msg.path),
			zap.Int("rows", msg.ds.Len()),
			zap.Strings("numeric_columns", m.numeric),
		)
		return m, nil

	case loadErrMsg:
		m.loadErr = msg.err
		return m, nil

	case resultMsg:
		m.res = msg.res
		m.runErr = nil
		m.summary = buildSummaryTable(msg.res)
		return m, nil

	case runErrMsg:
		m.runErr = msg.err
		m.res = nil
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if m.ds == nil {
			return m.updateFileStage(msg)
		}
		return m.updateControls(msg)
	}

	// Component messages such as cursor blinks.
	var cmd tea.Cmd
	if m.ds == nil {
		m.pathInput, cmd = m.pathInput.Update(msg)
	} else if m.focus == focusSeed {
		m.seed, cmd = m.seed.Update(msg)
	}
	return m, cmd
}

func (m Model) updateFileStage(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		path := strings.TrimSpace(m.pathInput.Value())
		if path == "" {
			return m, nil
		}
		return m, loadDataset(path)
	}
	var cmd tea.Cmd
	m.pathInput, cmd = m.pathInput.Update(msg)
	return m, cmd
}

func (m Model) updateControls(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "tab", "down":
		m.focus = (m.focus + 1) % focusCount
		return m.syncSeedFocus(), nil
	case "shift+tab", "up":
		m.focus = (m.focus + focusCount - 1) % focusCount
		return m.syncSeedFocus(), nil
	case "enter":
		if m.focus == focusRun {
			return m, m.runClustering()
		}
		m.focus = (m.focus + 1) % focusCount
		return m.syncSeedFocus(), nil
	case "r":
		if m.focus != focusSeed {
			return m, m.runClustering()
		}
	case "o":
		if m.focus != focusSeed {
			// Back to the file stage to load a different dataset.
			m.ds = nil
			m.res = nil
			m.runErr = nil
			m.loadErr = nil
			m.pathInput.Focus()
			return m, textinput.Blink
		}
	case "q", "esc":
		if m.focus != focusSeed || key == "esc" {
			m.quitting = true
			return m, tea.Quit
		}
	case "left", "right":
		if m.focus != focusSeed {
			return m.adjustControl(key == "right"), nil
		}
	}

	if m.focus == focusSeed {
		var cmd tea.Cmd
		m.seed, cmd = m.seed.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) syncSeedFocus() Model {
	if m.focus == focusSeed {
		m.seed.Focus()
	} else {
		m.seed.Blur()
	}
	return m
}

// adjustControl cycles the focused control. Feature 2 skips the current
// feature 1 so the pair always stays distinct.
func (m Model) adjustControl(forward bool) Model {
	step := 1
	if !forward {
		step = -1
	}
	n := len(m.numeric)

	switch m.focus {
	case focusFeature1:
		m.feature1 = (m.feature1 + step + n) % n
		if m.feature1 == m.feature2 {
			m.feature2 = (m.feature2 + 1) % n
		}
	case focusFeature2:
		next := (m.feature2 + step + n) % n
		if next == m.feature1 {
			next = (next + step + n) % n
		}
		m.feature2 = next
	case focusK:
		k := m.k + step
		if k >= m.cfg.KMin && k <= m.cfg.KMax {
			m.k = k
		}
	}
	return m
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	header := headerStyle.Render(" Customer Segmentation Dashboard ")
	subtitle := subtitleStyle.Render("K-Means groups customers by purchasing behavior and similarities.")

	var content string
	content += header + "\n" + subtitle + "\n"

	if m.ds == nil {
		content += m.viewFileStage()
		return containerStyle.Render(content)
	}

	content += m.viewControls()

	if m.runErr != nil {
		content += "\n" + errorStyle.Render("✗ "+m.runErr.Error()) + "\n"
	} else if m.res != nil {
		content += m.viewResults()
	} else {
		content += "\n" + dimStyle.Render("Press Enter on Run Clustering to segment the dataset.") + "\n"
	}

	footer := footerKeyStyle.Render("[tab]") + footerStyle.Render(" next  ") +
		footerKeyStyle.Render("[←/→]") + footerStyle.Render(" change  ") +
		footerKeyStyle.Render("[enter]") + footerStyle.Render(" run  ") +
		footerKeyStyle.Render("[o]") + footerStyle.Render(" open file  ") +
		footerKeyStyle.Render("[q]") + footerStyle.Render(" quit")
	content += "\n" + footer

	return containerStyle.Render(content)
}

func (m Model) viewFileStage() string {
	var b strings.Builder
	b.WriteString("\n" + sectionStyle.Render("┃ Load Dataset") + "\n")
	b.WriteString(labelStyle.Render("  CSV file: ") + m.pathInput.View() + "\n\n")
	if m.loadErr != nil {
		b.WriteString(errorStyle.Render("  ✗ "+m.loadErr.Error()) + "\n")
	} else {
		b.WriteString(warningStyle.Render("  ⚠ Please load a CSV dataset to begin clustering.") + "\n")
	}
	b.WriteString("\n" + footerKeyStyle.Render("[enter]") + footerStyle.Render(" load  ") +
		footerKeyStyle.Render("[esc]") + footerStyle.Render(" quit"))
	return b.String()
}

func (m Model) viewControls() string {
	var b strings.Builder
	b.WriteString("\n" + sectionStyle.Render("┃ Clustering Controls") + "\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %s — %d rows, %d numeric columns",
		m.path, m.ds.Len(), len(m.numeric))) + "\n")

	b.WriteString(m.controlLine(focusFeature1, "Feature 1", m.numeric[m.feature1]))
	b.WriteString(m.controlLine(focusFeature2, "Feature 2", m.numeric[m.feature2]))
	b.WriteString(m.controlLine(focusK, "Clusters (K)",
		fmt.Sprintf("%d", m.k)+dimStyle.Render(fmt.Sprintf("  (%d-%d)", m.cfg.KMin, m.cfg.KMax))))

	seedLabel := "  " + labelStyle.Render(fmt.Sprintf("%-14s", "Random seed"))
	b.WriteString(seedLabel + m.seed.View() + "\n")

	run := blurredStyle.Render("Run Clustering")
	if m.focus == focusRun {
		run = focusedStyle.Render("Run Clustering")
	}
	b.WriteString("\n  " + run + "\n")
	return b.String()
}

func (m Model) controlLine(focus int, label, value string) string {
	marker := "  "
	rendered := valueStyle.Render("‹ " + value + " ›")
	if m.focus == focus {
		marker = focusedStyle.Render("»") + " "
		rendered = focusedStyle.Render("‹ " + value + " ›")
	}
	return marker + labelStyle.Render(fmt.Sprintf("%-12s", label)) + " " + rendered + "\n"
}

func (m Model) viewResults() string {
	res := m.res
	var b strings.Builder

	chartWidth := m.cfg.ChartWidth
	if m.width > 0 && m.width-8 < chartWidth {
		chartWidth = m.width - 8
	}
	if chartWidth < 20 {
		chartWidth = 20
	}

	b.WriteString("\n" + sectionStyle.Render("┃ Customer Clusters") + "\n")
	b.WriteString(dimStyle.Render("  y: "+res.Feature2) + "\n")
	b.WriteString(renderScatter(res, chartWidth, m.cfg.ChartHeight) + "\n")
	b.WriteString(dimStyle.Render("  x: "+res.Feature1+"    X marks cluster centers") + "\n")

	b.WriteString("\n" + sectionStyle.Render("┃ Cluster Summary") + "\n")
	b.WriteString(m.summary.View() + "\n")

	b.WriteString("\n" + sectionStyle.Render("┃ Business Interpretation") + "\n")
	for _, s := range res.Summaries {
		dot := clusterStyle(s.Cluster).Render("●")
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			dot,
			valueStyle.Render(fmt.Sprintf("Cluster %d:", s.Cluster)),
			s.Label))
	}

	b.WriteString("\n" + dimStyle.Render("  Customers in the same cluster exhibit similar purchasing behaviour") + "\n")
	b.WriteString(dimStyle.Render("  and can be targeted with similar business strategies.") + "\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("  inertia=%.3f  run=%s", res.Inertia, res.RunID)) + "\n")
	return b.String()
}

func buildSummaryTable(res *segment.Result) table.Model {
	avg1 := "Avg " + res.Feature1
	avg2 := "Avg " + res.Feature2
	columns := []table.Column{
		{Title: "Cluster", Width: 8},
		{Title: "Count", Width: 7},
		{Title: avg1, Width: max(10, len(avg1)+2)},
		{Title: avg2, Width: max(10, len(avg2)+2)},
	}

	rows := make([]table.Row, 0, len(res.Summaries))
	for _, s := range res.Summaries {
		rows = append(rows, table.Row{
			strconv.Itoa(s.Cluster),
			strconv.Itoa(s.Count),
			fmt.Sprintf("%.2f", s.AvgFeature1),
			fmt.Sprintf("%.2f", s.AvgFeature2),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.Bold(true).Foreground(lipgloss.Color("42"))
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)
	return t
}
