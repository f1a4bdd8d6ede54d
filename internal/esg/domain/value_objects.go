package domain

import (
	"fmt"
	"time"
)

type CompanyID int

func (vo CompanyID) Int() int {
	return int(vo)
}

// ReportingPeriod identifies the period a reported value applies to. It is
// exchanged with the backend as an ISO date (yyyy-MM-dd).
type ReportingPeriod struct {
	time.Time
}

const reportingPeriodLayout = "2006-01-02"

func ParseReportingPeriod(value string) (ReportingPeriod, error) {
	t, err := time.Parse(reportingPeriodLayout, value)
	if err != nil {
		return ReportingPeriod{}, fmt.Errorf("parsing reporting period: %w", err)
	}
	return ReportingPeriod{t}, nil
}

func (vo ReportingPeriod) String() string {
	return vo.Format(reportingPeriodLayout)
}

func (vo ReportingPeriod) MarshalJSON() ([]byte, error) {
	return []byte(`"` + vo.String() + `"`), nil
}

func (vo *ReportingPeriod) UnmarshalJSON(data []byte) error {
	raw := string(data)
	if len(raw) < 2 || raw[0] != '"' || raw[len(raw)-1] != '"' {
		return fmt.Errorf("reporting period must be a %q string", reportingPeriodLayout)
	}
	parsed, err := ParseReportingPeriod(raw[1 : len(raw)-1])
	if err != nil {
		return err
	}
	*vo = parsed
	return nil
}
