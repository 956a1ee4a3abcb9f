// Package testing holds router tree fixtures shared by the routescan and cmd
// tests.
package testing

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

const (
	// RoutesDir is the routes tree inside RouterTree.
	RoutesDir = "src/routes"
	// RootFile is the root router file, relative to RoutesDir.
	RootFile = "mod.rs"
)

const modRS = `mod admin;
mod health;
mod records;
mod words;

use axum::routing::{get, post};
use axum::Router;

pub fn router(state: AppState) -> Router {
    let mut health_paths: Vec<String> = Vec::new();
    health_paths.push("/health".to_string());
    health_paths.push( "/api/health" .to_string() );

    let mut app = Router::new()
        .route("/api/v1/auth/login", post(v1_auth::login).fallback(fallback_handler))
        .route(
            "/api/users/me",
            get(users::me).put(users::update_profile).fallback(fallback_handler),
        )
        .route("/api/notifications/batch", axum::routing::delete(notifications::batch_delete))
        .route("/api/about/", get(about::info))
        .route(PATH_CONST, get(handler))
        .nest("/api/admin", admin::router())
        .nest("/api/words/", self::words::router(state.clone()))
        .nest("", crate::routes::records::router())
        .nest("/api/legacy", crate::legacy::router())
        .nest("/api/ghost", ghost::router());

    for path in health_paths {
        app = app.nest(&path, health::router());
    }
    app.with_state(state)
}
`

const healthRS = `pub fn router() -> Router<AppState> {
    Router::new()
        .route("/", get(health_check))
        .route("/live", get(live).head(live))
}
`

const adminModRS = `mod users;

pub fn router() -> Router<AppState> {
    Router::new()
        .route("/stats", get(stats))
        .nest("/users", users::router())
        .nest("/again", crate::routes::admin::router())
}
`

const adminUsersRS = `pub fn router() -> Router<AppState> {
    Router::new()
        .route("/", get(list_users).post(create_user))
        .route("/:id", get(get_user).put(update_user).delete(delete_user))
        // .route("/:id/ban", post(ban_user))
        .nest("/audit", super::super::records::router())
}
`

const recordsRS = `pub fn router() -> Router<AppState> {
    Router::new()
        .route("/records", get(list_records).post(create_record))
        .route("/records/:id", get(get_record))
}
`

const wordsRS = `pub fn router(state: AppState) -> Router<AppState> {
    Router::new()
        .route("/", get(list_words))
        .route("/search", get(search).fallback(method_not_allowed))
        .route("/quote\"d,(x)", post(quoted))
        .route("/:id", get(get_word).patch(update_word).delete(delete_word))
}
`

// RouterTree returns a small axum router tree. It covers nested modules,
// `super`/`self`/`crate::routes` references, a delegation cycle, two
// unresolvable modules, health path accumulation and a commented out route.
func RouterTree() fstest.MapFS {
	return fstest.MapFS{
		"src/routes/mod.rs":         {Data: []byte(modRS)},
		"src/routes/health.rs":      {Data: []byte(healthRS)},
		"src/routes/admin/mod.rs":   {Data: []byte(adminModRS)},
		"src/routes/admin/users.rs": {Data: []byte(adminUsersRS)},
		"src/routes/records.rs":     {Data: []byte(recordsRS)},
		"src/routes/words.rs":       {Data: []byte(wordsRS)},
		"src/main.rs":               {Data: []byte("fn main() {}\n")},
	}
}

// CommentedRoute is declared only inside a line comment of RouterTree.
const CommentedRoute = "POST /api/admin/users/:id/ban"

// RouterTreeEndpoints lists what a text based walk of RouterTree resolves.
func RouterTreeEndpoints() []string {
	return []string{
		"POST /api/v1/auth/login",
		"GET /api/users/me",
		"PUT /api/users/me",
		"DELETE /api/notifications/batch",
		"GET /api/about",
		"GET /api/admin/stats",
		"GET /api/admin/users",
		"POST /api/admin/users",
		"GET /api/admin/users/:id",
		"PUT /api/admin/users/:id",
		"DELETE /api/admin/users/:id",
		CommentedRoute,
		"GET /api/admin/users/audit/records",
		"POST /api/admin/users/audit/records",
		"GET /api/admin/users/audit/records/:id",
		"GET /api/words",
		"GET /api/words/search",
		`POST /api/words/quote"d,(x)`,
		"GET /api/words/:id",
		"PATCH /api/words/:id",
		"DELETE /api/words/:id",
		"GET /records",
		"POST /records",
		"GET /records/:id",
		"GET /health",
		"GET /health/live",
		"HEAD /health/live",
		"GET /api/health",
		"GET /api/health/live",
		"HEAD /api/health/live",
	}
}

// WriteTree materializes fsys below a fresh temporary directory and returns
// that directory.
func WriteTree(t *testing.T, fsys fstest.MapFS) string {
	t.Helper()
	root := t.TempDir()
	for name, f := range fsys {
		p := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatalf("create fixture dir: %v", err)
		}
		if err := os.WriteFile(p, f.Data, 0o644); err != nil {
			t.Fatalf("write fixture %s: %v", name, err)
		}
	}
	return root
}
