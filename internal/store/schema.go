package store

// CurrentVersion is the schema version a fresh database ends up at.
var CurrentVersion = len(migrations)

var migrations = []Migration{
	{
		Version: 1,
		Name:    "branch usage",
		Apply: execAll(`CREATE TABLE IF NOT EXISTS branches (
			id           INTEGER PRIMARY KEY,
			repo_path    TEXT NOT NULL,
			branch_name  TEXT NOT NULL,
			switch_count INTEGER NOT NULL DEFAULT 1,
			last_used    INTEGER NOT NULL,
			UNIQUE(repo_path, branch_name)
		)`),
	},
	{
		Version: 2,
		Name:    "previous branch pointer",
		Apply: execAll(`CREATE TABLE IF NOT EXISTS previous_branch (
			repo_path   TEXT PRIMARY KEY,
			branch_name TEXT NOT NULL,
			updated_at  INTEGER NOT NULL
		)`),
	},
	{
		Version: 3,
		Name:    "aliases",
		Apply: execAll(`CREATE TABLE IF NOT EXISTS aliases (
			repo_path   TEXT NOT NULL,
			alias       TEXT NOT NULL,
			branch_name TEXT NOT NULL,
			created_at  INTEGER NOT NULL,
			PRIMARY KEY (repo_path, alias)
		)`),
	},
	{
		Version: 4,
		Name:    "lookup indexes",
		Apply: execAll(
			`CREATE INDEX IF NOT EXISTS idx_branches_last_used ON branches(last_used DESC)`,
			`CREATE INDEX IF NOT EXISTS idx_branches_repo_last_used ON branches(repo_path, last_used DESC)`,
			`CREATE INDEX IF NOT EXISTS idx_aliases_branch ON aliases(repo_path, branch_name)`,
		),
	},
}
