/*
Package api implements the low-level Box REST client used by the box backend.

Every method follows the same pattern: build an authenticated request (bearer token
supplied per call by a TokenProvider), issue it, decode the JSON body, and map any
response with status >= 400 into the *Error failure envelope. Callers never handle raw
HTTP responses.

The provider has no path lookup; names are resolved by scoped full-text search followed
by exact-match filtering (FolderIDByName, FileIDByName and friends). A search that
matches nothing resolves to SentinelID rather than erroring.

Uploads below the 50 MB single-request ceiling are sent as one multipart request;
larger files use Box's resumable session protocol with per-chunk SHA-1 digests and a
whole-file digest at commit.
*/
package api
