package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// sqliteRepo implements EventRepo over the raw SQLite connection.
type sqliteRepo struct {
	db *sql.DB
}

var _ EventRepo = (*sqliteRepo)(nil)

func (r *sqliteRepo) AppendLLMEvent(ctx context.Context, data LLMEventData) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO llm_events
			(timestamp, provider, model, purpose, input_tokens, output_tokens,
			 latency_ms, success, error_message, request_body, response_body)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().Unix(), data.Provider, data.Model, data.Purpose,
		data.InputTokens, data.OutputTokens, data.LatencyMs,
		boolToInt(data.Success), data.ErrorMessage, data.RequestBody, data.ResponseBody,
	)
	if err != nil {
		return fmt.Errorf("insert llm event: %w", err)
	}
	return nil
}

func (r *sqliteRepo) QueryLLMEvents(ctx context.Context, limit int) ([]LLMEventRecord, error) {
	q := `
		SELECT id, timestamp, provider, model, purpose, input_tokens,
		       output_tokens, latency_ms, success, error_message
		FROM llm_events ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query llm events: %w", err)
	}
	defer rows.Close()

	var out []LLMEventRecord
	for rows.Next() {
		var rec LLMEventRecord
		var ts int64
		var success int
		if err := rows.Scan(&rec.ID, &ts, &rec.Provider, &rec.Model, &rec.Purpose,
			&rec.InputTokens, &rec.OutputTokens, &rec.LatencyMs, &success, &rec.ErrorMessage); err != nil {
			return nil, fmt.Errorf("scan llm event: %w", err)
		}
		rec.Timestamp = time.Unix(ts, 0)
		rec.Success = success != 0
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *sqliteRepo) GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, timestamp, provider, model, purpose, input_tokens,
		       output_tokens, latency_ms, success, error_message,
		       request_body, response_body
		FROM llm_events WHERE id = ?`, id)

	var rec LLMEventRecord
	var ts int64
	var success int
	err := row.Scan(&rec.ID, &ts, &rec.Provider, &rec.Model, &rec.Purpose,
		&rec.InputTokens, &rec.OutputTokens, &rec.LatencyMs, &success,
		&rec.ErrorMessage, &rec.RequestBody, &rec.ResponseBody)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan llm event: %w", err)
	}
	rec.Timestamp = time.Unix(ts, 0)
	rec.Success = success != 0
	return &rec, nil
}

func (r *sqliteRepo) UsageByPurpose(ctx context.Context) ([]LLMUsage, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT purpose, COUNT(*), SUM(input_tokens), SUM(output_tokens),
		       CAST(AVG(latency_ms) AS INTEGER)
		FROM llm_events GROUP BY purpose ORDER BY purpose`)
	if err != nil {
		return nil, fmt.Errorf("query usage: %w", err)
	}
	defer rows.Close()

	var out []LLMUsage
	for rows.Next() {
		var u LLMUsage
		if err := rows.Scan(&u.Purpose, &u.Calls, &u.InputTokens, &u.OutputTokens, &u.AvgLatencyMs); err != nil {
			return nil, fmt.Errorf("scan usage: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *sqliteRepo) AppendInteraction(ctx context.Context, data InteractionData) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO interactions (session_id, timestamp, role, message)
		VALUES (?, ?, ?, ?)`,
		data.SessionID, data.At.Unix(), data.Role, data.Message,
	)
	if err != nil {
		return fmt.Errorf("insert interaction: %w", err)
	}
	return nil
}

func (r *sqliteRepo) AppendResponse(ctx context.Context, data ResponseData) error {
	var reviewDate any
	if data.ReviewDate != nil {
		reviewDate = data.ReviewDate.Unix()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO responses
			(session_id, timestamp, topic, question_index, question, selected,
			 correct, outcome, confidence, reflection, review_date, delivery_mode)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		data.SessionID, data.At.Unix(), data.Topic, data.QuestionIndex,
		data.Question, data.Selected, data.Correct, data.Outcome,
		data.Confidence, data.Reflection, reviewDate, data.DeliveryMode,
	)
	if err != nil {
		return fmt.Errorf("insert response: %w", err)
	}
	return nil
}

func (r *sqliteRepo) QueryResponses(ctx context.Context, limit int) ([]ResponseRecord, error) {
	q := `
		SELECT id, session_id, timestamp, topic, question_index, question,
		       selected, correct, outcome, confidence, reflection,
		       review_date, delivery_mode
		FROM responses ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query responses: %w", err)
	}
	defer rows.Close()

	var out []ResponseRecord
	for rows.Next() {
		var rec ResponseRecord
		var ts int64
		var reviewTs sql.NullInt64
		if err := rows.Scan(&rec.ID, &rec.SessionID, &ts, &rec.Topic,
			&rec.QuestionIndex, &rec.Question, &rec.Selected, &rec.Correct,
			&rec.Outcome, &rec.Confidence, &rec.Reflection, &reviewTs,
			&rec.DeliveryMode); err != nil {
			return nil, fmt.Errorf("scan response: %w", err)
		}
		rec.At = time.Unix(ts, 0)
		if reviewTs.Valid {
			t := time.Unix(reviewTs.Int64, 0)
			rec.ReviewDate = &t
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
