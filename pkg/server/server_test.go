package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	plan "github.com/fin-tools/plan-advisor/pkg/handlers/plan"
	"github.com/fin-tools/plan-advisor/pkg/models/api"
	"github.com/fin-tools/plan-advisor/pkg/render"
	"github.com/fin-tools/plan-advisor/pkg/services/advisor"
	"github.com/fin-tools/plan-advisor/pkg/services/planner"
	"github.com/fin-tools/plan-advisor/pkg/view"
)

type mockAdvisor struct {
	mock.Mock
}

func (m *mockAdvisor) GetAdvice(ctx context.Context, req api.InvestmentRequest) (*api.AdviceResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.AdviceResponse), args.Error(1)
}

type patchResponse struct {
	Patches []view.Patch `json:"patches"`
}

func newTestServer(t *testing.T, svc advisor.Service) *httptest.Server {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	controller := planner.NewController(svc, render.NewRenderer(""))
	router := ConfigureRouter(logger, Config{
		Dependencies: Dependencies{Plan: plan.NewHandler(controller)},
	})
	return httptest.NewServer(router)
}

func TestSubmitEndpoint(t *testing.T) {
	mockSvc := new(mockAdvisor)
	mockSvc.On("GetAdvice", mock.Anything, api.InvestmentRequest{
		Amount:           10000,
		TimePeriod:       5,
		InvestmentType:   api.InvestmentFloating,
		RiskTolerance:    api.RiskModerate,
		MonthlyIncrement: 500,
	}).Return(&api.AdviceResponse{
		Advice: &api.Advice{
			TimePeriod:         5,
			TotalExpectedValue: 987654,
			AssetAllocation: &api.AssetAllocation{
				Stocks:      api.AllocationSlice{Percentage: 0.5},
				MutualFunds: api.AllocationSlice{Percentage: 0.2},
				Bonds:       api.AllocationSlice{Percentage: 0.2},
				Cash:        api.AllocationSlice{Percentage: 0.1},
			},
		},
		Strategy: api.Narrative{Sections: []api.NarrativeSection{
			{Name: "overview", Text: "x"},
			{Name: "stocks", Text: "buy index funds"},
		}},
	}, nil).Once()

	srv := newTestServer(t, mockSvc)
	defer srv.Close()

	body := `{"amount":"10000","time_period":"5","investment_type":"floating",` +
		`"risk_tolerance":"moderate","monthly_increment":"500"}`
	resp, err := http.Post(srv.URL+"/api/v1/plan", "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var parsed patchResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))

	var ops []view.PatchOp
	for _, p := range parsed.Patches {
		ops = append(ops, p.Op)
	}
	assert.Equal(t, []view.PatchOp{
		view.OpSetEnabled,
		view.OpSetLabel,
		view.OpDrawChart,
		view.OpSetHTML,
		view.OpSetHTML,
		view.OpReveal,
		view.OpSetLabel,
		view.OpSetEnabled,
	}, ops)

	chart := parsed.Patches[2].Chart
	require.NotNil(t, chart)
	require.Len(t, chart.Data, 1)
	assert.Equal(t, []float64{50, 20, 20, 10}, chart.Data[0].Values)

	mockSvc.AssertExpectations(t)
}

func TestSubmitEndpointServiceFailure(t *testing.T) {
	mockSvc := new(mockAdvisor)
	mockSvc.On("GetAdvice", mock.Anything, mock.Anything).
		Return(nil, &advisor.ServiceError{StatusCode: 500, Body: "boom"})

	srv := newTestServer(t, mockSvc)
	defer srv.Close()

	body := `{"amount":"100","time_period":"5","investment_type":"fixed","risk_tolerance":"moderate"}`
	resp, err := http.Post(srv.URL+"/api/v1/plan", "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var parsed patchResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))

	alerts := 0
	for _, p := range parsed.Patches {
		if p.Op == view.OpAlert {
			alerts++
		}
	}
	assert.Equal(t, 1, alerts)

	last := parsed.Patches[len(parsed.Patches)-1]
	assert.Equal(t, view.OpSetEnabled, last.Op)
	assert.True(t, *last.Enabled)
}

func TestSubmitEndpointRejectsBadPayload(t *testing.T) {
	srv := newTestServer(t, new(mockAdvisor))
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/v1/plan", "application/json", bytes.NewBufferString("{"))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestFieldVisibilityEndpoint(t *testing.T) {
	srv := newTestServer(t, new(mockAdvisor))
	defer srv.Close()

	tests := []struct {
		investmentType string
		visible        bool
	}{
		{"floating", true},
		{"fixed", false},
	}

	for _, tt := range tests {
		t.Run(tt.investmentType, func(t *testing.T) {
			resp, err := http.Get(srv.URL + "/api/v1/plan/field-visibility?investment_type=" + tt.investmentType)
			require.NoError(t, err)
			defer resp.Body.Close()

			var parsed patchResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
			require.Len(t, parsed.Patches, 1)
			assert.Equal(t, view.OpSetVisible, parsed.Patches[0].Op)
			assert.Equal(t, view.ElemMonthlyIncrementWrap, parsed.Patches[0].Target)
			assert.Equal(t, tt.visible, *parsed.Patches[0].Visible)
		})
	}
}

func TestPageAndHealth(t *testing.T) {
	srv := newTestServer(t, new(mockAdvisor))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/html"))

	page, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	for _, id := range []string{
		view.ElemAmount, view.ElemTimePeriod, view.ElemInvestmentType,
		view.ElemRiskTolerance, view.ElemMonthlyIncrement, view.ElemSubmit,
		view.ElemResults, view.ElemSummary, view.ElemRecommendations, view.ElemChart,
	} {
		assert.Contains(t, string(page), `id="`+id+`"`)
	}
}

// The page script must disable the submit control before issuing the fetch;
// otherwise a double-click can start two concurrent submissions.
func TestPageDisablesSubmitBeforeFetch(t *testing.T) {
	srv := newTestServer(t, new(mockAdvisor))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	page, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	script := string(page)
	submitListener := strings.Index(script, `addEventListener("submit"`)
	require.Positive(t, submitListener)
	script = script[submitListener:]

	disable := strings.Index(script, "btn.disabled = true")
	busy := strings.Index(script, `btn.textContent = "Calculating…"`)
	fetchCall := strings.Index(script, `fetch("/api/v1/plan"`)

	require.Positive(t, disable)
	require.Positive(t, busy)
	require.Positive(t, fetchCall)
	assert.Less(t, disable, fetchCall)
	assert.Less(t, busy, fetchCall)
}
