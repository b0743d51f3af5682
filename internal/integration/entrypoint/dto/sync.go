// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	synccase "github.com/financehub/server/internal/application/usecase/sync"
	"github.com/financehub/server/internal/domain/entity"
)

// Batch operation type discriminators.
const (
	OpTypeCreateExpense = "create_expense"
	OpTypeUpdateExpense = "update_expense"
	OpTypeDeleteExpense = "delete_expense"
	OpTypeCreateTarget  = "create_target"
	OpTypeUpdateTarget  = "update_target"
	OpTypeDeleteTarget  = "delete_target"
)

// BatchSyncRequest represents the request body for a batch sync.
type BatchSyncRequest struct {
	Operations []SyncOperationRequest `json:"operations" binding:"required,min=1,dive"`
}

// SyncOperationRequest is the wire form of one batch operation. Type selects
// the variant; the remaining fields are validated per type when converting.
type SyncOperationRequest struct {
	Type         string   `json:"type" binding:"required,oneof=create_expense update_expense delete_expense create_target update_target delete_target"`
	ClientID     string   `json:"client_id,omitempty"`
	ServerID     string   `json:"server_id,omitempty"`
	Title        string   `json:"title,omitempty"`
	Amount       int64    `json:"amount,omitempty"`
	Year         int      `json:"year,omitempty"`
	Month        int      `json:"month,omitempty"`
	Date         int      `json:"date,omitempty"`
	TagID        string   `json:"tag_id,omitempty"`
	TagIDs       []string `json:"tag_ids,omitempty"`
	NewTags      []string `json:"new_tags,omitempty"`
	AddTagIDs    []string `json:"add_tag_ids,omitempty"`
	RemoveTagIDs []string `json:"remove_tag_ids,omitempty"`
}

// ToOperation converts the wire form into its closed operation variant.
func (r SyncOperationRequest) ToOperation() (synccase.Operation, error) {
	switch r.Type {
	case OpTypeCreateExpense:
		tagIDs, err := parseUUIDs(r.TagIDs)
		if err != nil {
			return nil, fmt.Errorf("invalid tag_ids: %w", err)
		}
		return synccase.CreateExpenseOperation{
			ClientID:    r.ClientID,
			Title:       r.Title,
			Amount:      r.Amount,
			Year:        r.Year,
			Month:       r.Month,
			Date:        r.Date,
			TagIDs:      tagIDs,
			NewTagNames: r.NewTags,
		}, nil

	case OpTypeUpdateExpense:
		serverID, err := uuid.Parse(r.ServerID)
		if err != nil {
			return nil, fmt.Errorf("invalid server_id: %w", err)
		}
		addTagIDs, err := parseUUIDs(r.AddTagIDs)
		if err != nil {
			return nil, fmt.Errorf("invalid add_tag_ids: %w", err)
		}
		removeTagIDs, err := parseUUIDs(r.RemoveTagIDs)
		if err != nil {
			return nil, fmt.Errorf("invalid remove_tag_ids: %w", err)
		}
		return synccase.UpdateExpenseOperation{
			ServerID:     serverID,
			Title:        r.Title,
			Amount:       r.Amount,
			Year:         r.Year,
			Month:        r.Month,
			Date:         r.Date,
			AddTagIDs:    addTagIDs,
			RemoveTagIDs: removeTagIDs,
		}, nil

	case OpTypeDeleteExpense:
		serverID, err := uuid.Parse(r.ServerID)
		if err != nil {
			return nil, fmt.Errorf("invalid server_id: %w", err)
		}
		return synccase.DeleteExpenseOperation{ServerID: serverID}, nil

	case OpTypeCreateTarget:
		tagID, err := uuid.Parse(r.TagID)
		if err != nil {
			return nil, fmt.Errorf("invalid tag_id: %w", err)
		}
		return synccase.CreateTargetOperation{
			ClientID: r.ClientID,
			TagID:    tagID,
			Month:    r.Month,
			Year:     r.Year,
			Amount:   r.Amount,
		}, nil

	case OpTypeUpdateTarget:
		serverID, err := uuid.Parse(r.ServerID)
		if err != nil {
			return nil, fmt.Errorf("invalid server_id: %w", err)
		}
		return synccase.UpdateTargetOperation{
			ServerID: serverID,
			Amount:   r.Amount,
		}, nil

	case OpTypeDeleteTarget:
		serverID, err := uuid.Parse(r.ServerID)
		if err != nil {
			return nil, fmt.Errorf("invalid server_id: %w", err)
		}
		return synccase.DeleteTargetOperation{ServerID: serverID}, nil

	default:
		return nil, fmt.Errorf("unknown operation type %q", r.Type)
	}
}

func parseUUIDs(values []string) ([]uuid.UUID, error) {
	if len(values) == 0 {
		return nil, nil
	}
	ids := make([]uuid.UUID, len(values))
	for i, v := range values {
		id, err := uuid.Parse(v)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}

// SyncResultResponse represents the outcome of one batch operation.
type SyncResultResponse struct {
	Success  bool   `json:"success"`
	ClientID string `json:"client_id,omitempty"`
	ServerID string `json:"server_id,omitempty"`
	Error    string `json:"error,omitempty"`
}

// BatchSyncResponse represents the response for a batch sync.
type BatchSyncResponse struct {
	Results []SyncResultResponse `json:"results"`
}

// ToBatchSyncResponse converts an ApplyBatchOutput to its DTO.
func ToBatchSyncResponse(output *synccase.ApplyBatchOutput) BatchSyncResponse {
	response := BatchSyncResponse{Results: make([]SyncResultResponse, len(output.Results))}
	for i, result := range output.Results {
		response.Results[i] = SyncResultResponse{
			Success:  result.Success,
			ClientID: result.ClientID,
			ServerID: result.ServerID,
			Error:    result.Error,
		}
	}
	return response
}

// GraphEdgeResponse represents a graph edge in sync deltas.
type GraphEdgeResponse struct {
	FromTagID string    `json:"from_tag_id"`
	ToTagID   string    `json:"to_tag_id"`
	Weight    int64     `json:"weight"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SyncDeltaResponse represents the response for a sync delta query.
type SyncDeltaResponse struct {
	Expenses          []ExpenseResponse   `json:"expenses"`
	Tags              []TagResponse       `json:"tags"`
	Targets           []TargetResponse    `json:"targets"`
	GraphEdges        []GraphEdgeResponse `json:"graph_edges"`
	LastSyncTimestamp int64               `json:"last_sync_timestamp"`
}

// ToSyncDeltaResponse converts a GetDeltaOutput to its DTO.
func ToSyncDeltaResponse(output *synccase.GetDeltaOutput) SyncDeltaResponse {
	response := SyncDeltaResponse{
		Expenses:          make([]ExpenseResponse, len(output.Expenses)),
		Tags:              make([]TagResponse, len(output.Tags)),
		Targets:           make([]TargetResponse, len(output.Targets)),
		GraphEdges:        make([]GraphEdgeResponse, len(output.GraphEdges)),
		LastSyncTimestamp: output.LastSyncTimestamp,
	}
	for i, exp := range output.Expenses {
		response.Expenses[i] = toEntityExpenseResponse(exp)
	}
	for i, tag := range output.Tags {
		response.Tags[i] = toEntityTagResponse(tag)
	}
	for i, target := range output.Targets {
		response.Targets[i] = toEntityTargetResponse(target)
	}
	for i, edge := range output.GraphEdges {
		response.GraphEdges[i] = GraphEdgeResponse{
			FromTagID: edge.FromTagID.String(),
			ToTagID:   edge.ToTagID.String(),
			Weight:    edge.Weight,
			CreatedAt: edge.CreatedAt,
			UpdatedAt: edge.UpdatedAt,
		}
	}
	return response
}

func toEntityExpenseResponse(exp *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:        exp.ID.String(),
		LocalID:   exp.LocalID,
		Title:     exp.Title,
		Amount:    exp.Amount,
		Year:      exp.Year,
		Month:     exp.Month,
		Date:      exp.Date,
		CreatedAt: exp.CreatedAt,
		UpdatedAt: exp.UpdatedAt,
	}
}

func toEntityTagResponse(tag *entity.Tag) TagResponse {
	return TagResponse{
		ID:            tag.ID.String(),
		Name:          tag.Name,
		MonthlyAmount: tag.MonthlyAmount,
		CurrentMonth:  tag.CurrentMonth,
		CurrentYear:   tag.CurrentYear,
		CreatedAt:     tag.CreatedAt,
		UpdatedAt:     tag.UpdatedAt,
	}
}

func toEntityTargetResponse(target *entity.Target) TargetResponse {
	return TargetResponse{
		ID:        target.ID.String(),
		TagID:     target.TagID.String(),
		Month:     target.Month,
		Year:      target.Year,
		Amount:    target.Amount,
		Spent:     target.Spent,
		CreatedAt: target.CreatedAt,
		UpdatedAt: target.UpdatedAt,
	}
}
