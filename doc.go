// Package articles implements a small CRUD web API for articles and users
// with token based authentication.
//
// Authentication core:
//   - Passwords are stored as bcrypt digests and never serialized back out.
//   - Tokens are HS256 signed JWTs carrying {id, name, email, expires_at}.
//     The expires_at claim is a second granularity UTC string kept for
//     compatibility with tokens issued by the previous system; Decode only
//     verifies signature and structure while Validate also enforces expiry.
//   - The current user is resolved from claims without re-reading storage.
//     Revoking a user therefore does not invalidate tokens already issued
//     until their window elapses.
//
// Authorization:
//   - Admin rights are modeled as membership in the "admin" group. Granting
//     admin is idempotent; membership uniqueness is enforced by the database.
//   - Articles may be edited by their author or by an admin.
package articles
