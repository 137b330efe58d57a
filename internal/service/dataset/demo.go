package dataset

import (
	"fmt"

	"github.com/scg-heim/heim-backend-go/internal/domain/roster"
)

var demoDepartments = []string{
	"Sales > Retail",
	"Management > HR",
	"IT > Support",
	"Production > Line 1",
	"Logistics",
}

// DemoSnapshot builds a small deterministic dataset for demos and smoke
// tests: 50 members spread over 5 departments and 150 records.
func DemoSnapshot() *roster.Snapshot {
	members := make([]roster.Member, 0, 50)
	for i := 0; i < 50; i++ {
		members = append(members, roster.Member{
			Name: fmt.Sprintf("User %d", i+1),
			Dept: demoDepartments[i%len(demoDepartments)],
		})
	}

	records := make([]roster.Record, 0, 150)
	for i := 0; i < 150; i++ {
		m := members[i%len(members)]
		records = append(records, roster.Record{
			Name:            m.Name,
			Department:      m.Dept,
			CreatedDateTime: "2026-01-15",
			Topic:           "Demo Training",
		})
	}

	return &roster.Snapshot{Members: members, Records: records}
}
