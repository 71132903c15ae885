package sqlite

// Schema DDL, grouped by the migration version that introduces it.
// Each step commits together with its user_version bump, so statements
// that cannot be repeated (ALTER TABLE ADD COLUMN) run at most once;
// CREATE statements additionally use IF NOT EXISTS.

// Version 1: asset register and settings.
const (
	createAssets = `CREATE TABLE IF NOT EXISTS assets (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    name          TEXT NOT NULL CHECK (length(name) > 0),
    asset_tag     TEXT NOT NULL UNIQUE,
    category      TEXT NOT NULL DEFAULT 'General',
    location      TEXT NOT NULL DEFAULT 'Unassigned',
    serial_number TEXT NOT NULL DEFAULT '',
    purchase_date TEXT NOT NULL,
    cost          REAL NOT NULL DEFAULT 0 CHECK (cost >= 0),
    status        TEXT NOT NULL DEFAULT 'Active'
                  CHECK (status IN ('Active', 'In Repair', 'Disposed')),
    image_url     TEXT NOT NULL DEFAULT ''
);`

	createSettings = `CREATE TABLE IF NOT EXISTS settings (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);`

	idxAssetsStatus   = `CREATE INDEX IF NOT EXISTS idx_assets_status ON assets(status);`
	idxAssetsCategory = `CREATE INDEX IF NOT EXISTS idx_assets_category ON assets(category);`
)

// Version 2: sellable products and the sales ledger, plus the
// last_validated column the validation action writes to.
const (
	alterAssetsLastValidated = `ALTER TABLE assets ADD COLUMN last_validated TEXT;`

	createProducts = `CREATE TABLE IF NOT EXISTS products (
    id       INTEGER PRIMARY KEY AUTOINCREMENT,
    name     TEXT NOT NULL CHECK (length(name) > 0),
    price    REAL NOT NULL DEFAULT 0 CHECK (price >= 0),
    stock    INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
    category TEXT NOT NULL DEFAULT 'General'
);`

	createTransactions = `CREATE TABLE IF NOT EXISTS transactions (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    reference  TEXT NOT NULL UNIQUE,
    product_id INTEGER NOT NULL REFERENCES products(id),
    quantity   INTEGER NOT NULL CHECK (quantity > 0),
    type       TEXT NOT NULL,
    amount     REAL NOT NULL CHECK (amount >= 0),
    created_at TEXT NOT NULL
);`

	idxTransactionsType = `CREATE INDEX IF NOT EXISTS idx_transactions_type ON transactions(type);`
)

// Version 3: tycoon progression singleton.
const createTycoonStats = `CREATE TABLE IF NOT EXISTS tycoon_stats (
    id                INTEGER PRIMARY KEY CHECK (id = 1),
    level             INTEGER NOT NULL DEFAULT 1 CHECK (level >= 1),
    xp                INTEGER NOT NULL DEFAULT 0 CHECK (xp >= 0),
    total_revenue     REAL NOT NULL DEFAULT 0 CHECK (total_revenue >= 0),
    satisfaction_rate INTEGER NOT NULL DEFAULT 100,
    reputation_score  INTEGER NOT NULL DEFAULT 50,
    employees_count   INTEGER NOT NULL DEFAULT 0,
    days_active       INTEGER NOT NULL DEFAULT 1
);`
