package db

const eventCreateQ = `
INSERT INTO security_events (user_id, session_id, video_id, event_type, details, severity)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id
`
