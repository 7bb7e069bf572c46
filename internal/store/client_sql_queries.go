// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Karpov

package store

const clientSchema = `
	CREATE TABLE IF NOT EXISTS session (
		id       INTEGER PRIMARY KEY CHECK (id = 1),
		user_id  INTEGER NOT NULL,
		login    TEXT    NOT NULL,
		token    TEXT    NOT NULL,
		saved_at TIMESTAMP NOT NULL
	);

	CREATE TABLE IF NOT EXISTS cached_activities (
		id         TEXT PRIMARY KEY,
		title      TEXT NOT NULL,
		status     TEXT NOT NULL,
		category   TEXT NOT NULL DEFAULT '',
		priority   INTEGER NOT NULL DEFAULT 0,
		score      REAL NOT NULL DEFAULT 0,
		due_date   TIMESTAMP NULL,
		updated_at TIMESTAMP NULL
	);

	CREATE TABLE IF NOT EXISTS cache_meta (
		key   TEXT PRIMARY KEY,
		value INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS committed_state (
		id      INTEGER PRIMARY KEY CHECK (id = 1),
		payload TEXT NOT NULL
	);`

const (
	saveSession = `
		INSERT INTO session (id, user_id, login, token, saved_at)
		VALUES (1, $1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			user_id  = excluded.user_id,
			login    = excluded.login,
			token    = excluded.token,
			saved_at = excluded.saved_at;`

	getSession = `
		SELECT user_id, login, token, saved_at
		FROM session
		WHERE id = 1;`

	clearSession = `DELETE FROM session;`

	clearCachedActivities = `DELETE FROM cached_activities;`

	saveCachedActivity = `
		INSERT INTO cached_activities (id, title, status, category, priority, score, due_date, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`

	getCachedActivities = `
		SELECT id, title, status, category, priority, score, due_date, updated_at
		FROM cached_activities
		ORDER BY id;`

	markActivitiesCached = `
		INSERT INTO cache_meta (key, value) VALUES ('activities_cached', 1)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value;`

	activitiesCached = `
		SELECT value FROM cache_meta WHERE key = 'activities_cached';`

	saveCommittedState = `
		INSERT INTO committed_state (id, payload)
		VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET payload = excluded.payload;`

	getCommittedState = `
		SELECT payload FROM committed_state WHERE id = 1;`

	clearCommittedState = `DELETE FROM committed_state;`
)
