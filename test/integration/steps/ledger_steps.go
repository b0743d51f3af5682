package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/cucumber/godog"
)

// registerLedgerSteps registers domain fixture steps that seed the ledger
// through the public API, capturing the server-assigned IDs for later steps.
func registerLedgerSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^an expense "([^"]*)" of (\d+) cents in month (\d+) of (\d+) tagged with "([^"]*)"$`, anExpenseTaggedWith)
	ctx.Step(`^a target of (\d+) cents for tag "([^"]*)" in month (\d+) of (\d+)$`, aTargetForTag)
}

func anExpenseTaggedWith(ctx context.Context, title string, amount, month, year int, tagNames string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	names := strings.Split(tagNames, ", ")
	payload, err := json.Marshal(map[string]any{
		"title":    title,
		"amount":   amount,
		"year":     year,
		"month":    month,
		"date":     1,
		"new_tags": names,
	})
	if err != nil {
		return ctx, err
	}

	if err := tc.doRequest(http.MethodPost, "/api/v1/expenses", bytes.NewBuffer(payload)); err != nil {
		return ctx, err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return ctx, fmt.Errorf("fixture expense creation failed with %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}

	var created struct {
		Expense struct {
			ID string `json:"id"`
		} `json:"expense"`
		CreatedTags []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"created_tags"`
	}
	if err := json.Unmarshal(tc.responseBody, &created); err != nil {
		return ctx, fmt.Errorf("failed to parse fixture response: %w", err)
	}

	tc.vars["expense:"+title] = created.Expense.ID
	for _, tag := range created.CreatedTags {
		tc.vars["tag:"+tag.Name] = tag.ID
	}

	return SetTestContext(ctx, tc), nil
}

func aTargetForTag(ctx context.Context, amount int, tagName string, month, year int) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	tagID, ok := tc.vars["tag:"+tagName]
	if !ok {
		return ctx, fmt.Errorf("tag %q was not created by an earlier step", tagName)
	}

	payload, err := json.Marshal(map[string]any{
		"tag_id": tagID,
		"month":  month,
		"year":   year,
		"amount": amount,
	})
	if err != nil {
		return ctx, err
	}

	if err := tc.doRequest(http.MethodPost, "/api/v1/targets", bytes.NewBuffer(payload)); err != nil {
		return ctx, err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return ctx, fmt.Errorf("fixture target creation failed with %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}

	return SetTestContext(ctx, tc), nil
}
