// Package domain contains the core domain entities shared by the search
// client, the backend proxy and the knowledge-base engine: queries, health
// checkup packages, tagged search results and search history records. The
// types are free of transport and storage concerns.
package domain
