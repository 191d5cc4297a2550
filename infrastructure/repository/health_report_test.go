package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-health-monitor/internal/domain"
)

func TestInsertReportQuery(t *testing.T) {
	started := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	report := &domain.HealthReport{
		RunID:       "V1StGXR8_Z5jdHi6B-myT",
		AccountID:   "act_1",
		AccountName: "Loja Centro",
		StartedAt:   started,
		FinishedAt:  started.Add(time.Minute),
		Score:       domain.HealthScore{Total: 72, Grade: domain.GradeC, Status: "Fair"},
		Issues: []domain.Issue{
			{Severity: domain.SeverityHigh, Type: domain.IssueLowROAS},
			{Severity: domain.SeverityMedium, Type: domain.IssueUnderspending},
		},
	}

	query, args, err := insertReportQuery(report, "id-1", started.Add(2*time.Minute))
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO health_reports")
	assert.Contains(t, query, "$18")
	require.Len(t, args, 18)
	assert.Equal(t, "id-1", args[0])
	assert.Equal(t, 72, args[4])
	assert.Equal(t, "C", args[5])
	// contagens calculadas a partir das issues quando o resumo não veio preenchido
	assert.Equal(t, 0, args[7])
	assert.Equal(t, 1, args[8])
	assert.Equal(t, 1, args[9])
	assert.Equal(t, 0, args[10])
	assert.Contains(t, args[12], `"low_roas"`)
}

func TestInsertReportQuery_EmptyIssuesAreStoredAsArray(t *testing.T) {
	_, args, err := insertReportQuery(&domain.HealthReport{RunID: "r"}, "id-1", time.Now())
	require.NoError(t, err)
	assert.Equal(t, "[]", args[12])
}

func TestListReportsQuery(t *testing.T) {
	tests := []struct {
		name      string
		accountID string
		limit     uint64
		wantQuery string
		wantArgs  []interface{}
	}{
		{
			name:      "Filtra por conta com limite informado",
			accountID: "act_1",
			limit:     1,
			wantQuery: "SELECT run_id, account_id, score, grade, critical_count, high_count, medium_count, low_count, created_at FROM health_reports WHERE account_id = $1 ORDER BY created_at DESC LIMIT 1",
			wantArgs:  []interface{}{"act_1"},
		},
		{
			name:      "Sem conta e limite zero usa o padrão",
			wantQuery: "SELECT run_id, account_id, score, grade, critical_count, high_count, medium_count, low_count, created_at FROM health_reports ORDER BY created_at DESC LIMIT 30",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := listReportsQuery(tt.accountID, tt.limit)
			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, len(tt.wantArgs), len(args))
			for i := range tt.wantArgs {
				assert.Equal(t, tt.wantArgs[i], args[i])
			}
		})
	}
}
