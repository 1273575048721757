package queryresponse

import "bikeshare/domain/entities"

// QueryResponse contains a report computed during a session, ready to be published
// + Metadata: city, filters and reporter that built the report
// + SessionID: iteration of the session in which the report was computed
// + Report: the report itself
type QueryResponse struct {
	Metadata  entities.Metadata `json:"metadata"`
	SessionID string            `json:"session_id"`
	Report    any               `json:"report"`
}

func NewQueryResponse(metadata entities.Metadata, sessionID string, report any) *QueryResponse {
	return &QueryResponse{
		Metadata:  metadata,
		SessionID: sessionID,
		Report:    report,
	}
}

func (qr *QueryResponse) GetMetadata() entities.Metadata {
	return qr.Metadata
}

func (qr *QueryResponse) GetSessionID() string {
	return qr.SessionID
}
