package fccee

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// Cutflow counts what happened to the events of one sample.
type Cutflow struct {
	Sample   string
	Events   int64
	Outcomes map[Outcome]int64
	// Failed counts, per particle type, the events rejected by each cut.
	Failed map[ParticleType]map[string]int64
}

func NewCutflow(sample string) *Cutflow {
	return &Cutflow{
		Sample:   sample,
		Outcomes: make(map[Outcome]int64),
		Failed:   make(map[ParticleType]map[string]int64),
	}
}

// Record accounts for the final decision taken on one event. t is the last
// particle type tried.
func (c *Cutflow) Record(t ParticleType, d Decision) {
	c.Events++
	c.Outcomes[d.Outcome]++
	if d.Outcome != Rejected {
		return
	}
	m := c.Failed[t]
	if m == nil {
		m = make(map[string]int64)
		c.Failed[t] = m
	}
	m[d.Failed]++
}

// Render writes the cut flow as a table.
func (c *Cutflow) Render(w io.Writer) {
	fmt.Fprintf(w, "cut flow for %s\n", c.Sample)
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"stage", "type", "events"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	table.Append([]string{"total", "", strconv.FormatInt(c.Events, 10)})
	table.Append([]string{"not applicable", "", strconv.FormatInt(c.Outcomes[NotApplicable], 10)})
	for _, t := range ParticleTypes {
		m := c.Failed[t]
		if m == nil {
			continue
		}
		for _, names := range [][]string{PrecutNames, CutNames} {
			for _, name := range names {
				if n := m[name]; n > 0 {
					table.Append([]string{"rejected by " + name, t.String(), strconv.FormatInt(n, 10)})
				}
			}
		}
	}
	table.Append([]string{"filled", "", strconv.FormatInt(c.Outcomes[Filled], 10)})
	table.Render()
}
