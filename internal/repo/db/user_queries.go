package db

const userGetByIDQ = `
SELECT
	u.id,
	u.name,
	u.email,
	u.role,
	u.is_active,
	u.created_at,
	u.updated_at
FROM users u
WHERE u.id = $1
`

const userGetByEmailQ = `
SELECT
    u.id,
    u.name,
    u.email,
    u.password,
    u.role,
	u.is_active,
    u.created_at,
    u.updated_at
FROM users u
WHERE email = $1
`

const userCreateQ = `
INSERT INTO users (name, password, email, role, is_active)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`
