package storage

const schemaV1 = `
CREATE TABLE IF NOT EXISTS runs (
    run_id          INTEGER PRIMARY KEY AUTOINCREMENT,
    run_uuid        TEXT UNIQUE NOT NULL,
    run_timestamp   DATETIME DEFAULT CURRENT_TIMESTAMP,
    run_duration_ms INTEGER,
    lib_version     TEXT NOT NULL,
    cli_version     TEXT,
    run_flags       TEXT,
    enabled_demos   INTEGER DEFAULT 0,
    total_steps     INTEGER DEFAULT 0,
    failed_steps    INTEGER DEFAULT 0,
    created_at      DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_runs_timestamp
    ON runs(run_timestamp DESC);

CREATE TABLE IF NOT EXISTS demos (
    demo_id         INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id          INTEGER NOT NULL,
    name            TEXT NOT NULL,
    title           TEXT NOT NULL,
    enabled         INTEGER NOT NULL,
    build_tag       TEXT,
    UNIQUE(run_id, name, title),
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_demos_run ON demos(run_id);

CREATE TABLE IF NOT EXISTS steps (
    step_id         INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id          INTEGER NOT NULL,
    demo_id         INTEGER NOT NULL,
    demo_title      TEXT NOT NULL,
    seq             INTEGER NOT NULL,
    name            TEXT NOT NULL,
    status          TEXT NOT NULL,
    detail          TEXT,
    artifact        TEXT,
    duration_ms     INTEGER DEFAULT 0,
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE,
    FOREIGN KEY (demo_id) REFERENCES demos(demo_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_steps_run ON steps(run_id);
CREATE INDEX IF NOT EXISTS idx_steps_key ON steps(demo_title, name);

CREATE TABLE IF NOT EXISTS metrics (
    metric_id       INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id          INTEGER NOT NULL,
    metric_name     TEXT NOT NULL,
    metric_value    REAL NOT NULL,
    metric_unit     TEXT,
    created_at      DATETIME DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_metrics_run ON metrics(run_id);
CREATE INDEX IF NOT EXISTS idx_metrics_name ON metrics(metric_name);
`
