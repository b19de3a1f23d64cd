package store

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations is the ordered list of schema migrations.
// Each migration's version must be sequential starting from 1.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS users (
	id                   INTEGER PRIMARY KEY AUTOINCREMENT,
	name                 TEXT NOT NULL,
	email                TEXT NOT NULL UNIQUE,
	phone                TEXT NOT NULL DEFAULT '',
	password_hash        TEXT NOT NULL,
	company_name         TEXT NOT NULL DEFAULT '',
	company_overview     TEXT NOT NULL DEFAULT '',
	timezone             TEXT NOT NULL DEFAULT 'UTC',
	country_preferences  TEXT NOT NULL DEFAULT '[]',
	category_preferences TEXT NOT NULL DEFAULT '[]',
	created_at           DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS sessions (
	token      TEXT PRIMARY KEY,
	user_id    INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	created_at DATETIME NOT NULL,
	expires_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_sessions_user_id ON sessions(user_id);
CREATE INDEX IF NOT EXISTS idx_sessions_expires_at ON sessions(expires_at);

CREATE TABLE IF NOT EXISTS categories (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	name        TEXT NOT NULL UNIQUE,
	description TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS companies (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	name        TEXT NOT NULL UNIQUE,
	category_id INTEGER NOT NULL REFERENCES categories(id),
	overview    TEXT NOT NULL DEFAULT '',
	website_url TEXT NOT NULL DEFAULT '',
	country     TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_companies_category_id ON companies(category_id);

CREATE TABLE IF NOT EXISTS leads (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	full_name   TEXT NOT NULL,
	email       TEXT NOT NULL DEFAULT '',
	phone       TEXT NOT NULL DEFAULT '',
	country     TEXT NOT NULL DEFAULT '',
	company_id  INTEGER NOT NULL REFERENCES companies(id),
	source_info TEXT NOT NULL DEFAULT '{}'
);

CREATE INDEX IF NOT EXISTS idx_leads_country ON leads(country);
CREATE INDEX IF NOT EXISTS idx_leads_company_id ON leads(company_id);

CREATE TABLE IF NOT EXISTS daily_batches (
	user_id     INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	assigned_on TEXT NOT NULL,
	created_at  DATETIME NOT NULL,
	PRIMARY KEY (user_id, assigned_on)
);

CREATE TABLE IF NOT EXISTS assignments (
	user_id     INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	lead_id     INTEGER NOT NULL REFERENCES leads(id),
	assigned_on TEXT NOT NULL,
	PRIMARY KEY (user_id, lead_id)
);

CREATE INDEX IF NOT EXISTS idx_assignments_user_day ON assignments(user_id, assigned_on);

CREATE TABLE IF NOT EXISTS lead_statuses (
	user_id          INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	lead_id          INTEGER NOT NULL REFERENCES leads(id),
	status           TEXT NOT NULL CHECK(status IN ('not_interested', 'maybe', 'interested')),
	next_action_date TEXT NOT NULL DEFAULT '',
	updated_at       DATETIME NOT NULL,
	PRIMARY KEY (user_id, lead_id)
);

CREATE TABLE IF NOT EXISTS notes (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id    INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	lead_id    INTEGER NOT NULL REFERENCES leads(id),
	content    TEXT NOT NULL,
	created_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_notes_user_lead ON notes(user_id, lead_id);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
}
