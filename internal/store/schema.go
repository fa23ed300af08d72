package store

// schemaVersion is bumped whenever the snapshot tables change shape.
// migrate steps older databases forward.
const schemaVersion = 1

const schemaSQL = `
CREATE TABLE IF NOT EXISTS transactions (
    id           TEXT PRIMARY KEY,
    position     INTEGER NOT NULL,
    amount       REAL NOT NULL,
    category     TEXT NOT NULL,
    note         TEXT NOT NULL DEFAULT '',
    date         TEXT NOT NULL,
    is_favorite  INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS recurring (
    id           TEXT PRIMARY KEY,
    kind         TEXT NOT NULL CHECK (kind IN ('income', 'expense')),
    position     INTEGER NOT NULL,
    name         TEXT NOT NULL,
    amount       REAL NOT NULL,
    frequency    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS savings (
    id           TEXT PRIMARY KEY,
    position     INTEGER NOT NULL,
    week_start   TEXT NOT NULL,
    amount       REAL NOT NULL,
    date         TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS monthly_records (
    id                TEXT PRIMARY KEY,
    position          INTEGER NOT NULL,
    month             TEXT NOT NULL,
    income            REAL NOT NULL,
    fixed_expenses    REAL NOT NULL,
    variable_expenses REAL NOT NULL,
    saved_amount      REAL NOT NULL,
    date              TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS quick_expenses (
    id           TEXT PRIMARY KEY,
    position     INTEGER NOT NULL,
    amount       REAL NOT NULL,
    category     TEXT NOT NULL,
    note         TEXT NOT NULL DEFAULT '',
    usage_count  INTEGER NOT NULL DEFAULT 0,
    is_favorite  INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS settings (
    key    TEXT PRIMARY KEY,
    value  TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(date);
`
