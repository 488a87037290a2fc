package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Evaluation is the outcome of evaluating one segment against a profile.
type Evaluation struct {
	SegmentID string `json:"segmentId"`
	Result    bool   `json:"result"`
}

type evaluationEnvelope struct {
	SegmentEvaluation *struct {
		Results []Evaluation `json:"results"`
	} `json:"segmentEvaluation"`
}

// EvaluateProfile asks the evaluation endpoint whether the profile belongs
// to each of the given segments. A 2xx response without a segmentEvaluation
// member is a shape error (ErrNoEvaluationResult).
func (c *Client) EvaluateProfile(ctx context.Context, profileID string, segmentIDs []string) ([]Evaluation, error) {
	if profileID == "" {
		return nil, ErrMissingProfileID
	}

	params := url.Values{}
	params.Set("profile_id", profileID)
	params.Set("segment_id", strings.Join(segmentIDs, ","))
	params.Set("type_segment_evaluation", "segment-id-evaluation")

	endpoint := fmt.Sprintf("%s/v1/companies/%s/buckets/%s/segment-evaluation?%s",
		strings.TrimRight(c.cfg.EvaluationURL, "/"),
		url.PathEscape(c.cfg.GroupID),
		url.PathEscape(c.cfg.BucketName),
		params.Encode(),
	)

	var envelope evaluationEnvelope
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &envelope); err != nil {
		return nil, err
	}
	if envelope.SegmentEvaluation == nil {
		return nil, ErrNoEvaluationResult
	}
	return envelope.SegmentEvaluation.Results, nil
}
