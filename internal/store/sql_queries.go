package store

const (
	createUser = `INSERT INTO users (login, password_hash, name)
	VALUES ($1, $2, $3)
	RETURNING user_id, login, password_hash, name, created_at;`

	findUserByLogin = `SELECT user_id, login, password_hash, name, created_at
	FROM users
	WHERE login = $1;`

	getViewState = `SELECT selected_activity_id, sort_option, filter, date_picker_value, updated_at
	FROM dashboard_states
	WHERE user_id = $1;`

	insertDefaultViewState = `INSERT INTO dashboard_states (user_id, selected_activity_id, sort_option, filter, date_picker_value, seq, updated_at)
	VALUES ($1, '', $2, '{}', $3, 0, $4)
	ON CONFLICT (user_id) DO NOTHING;`

	getViewStateSeq = `SELECT seq FROM dashboard_states WHERE user_id = $1;`

	deleteViewState = `DELETE FROM dashboard_states
	WHERE user_id = $1;`

	listActivities = `SELECT id, user_id, title, status, category, priority, score, due_date, updated_at
	FROM activities
	WHERE user_id = $1
	ORDER BY due_date NULLS LAST, id;`
)
