// Package clientip extracts the real client IP address from HTTP requests.
//
// Proxy headers are checked in priority order:
//  1. CF-Connecting-IP (Cloudflare)
//  2. DO-Connecting-IP (DigitalOcean)
//  3. X-Forwarded-For, leftmost address
//  4. X-Real-IP
//  5. RemoteAddr
//
// Header values are validated with net.ParseIP and normalized; malformed
// values and 0.0.0.0 are skipped. When nothing validates, the raw
// RemoteAddr is returned.
//
//	log.Info("login attempt", logger.ClientIP(clientip.GetIP(r)))
//
// The headers are trusted as sent, so only rely on them behind a proxy that
// overwrites them.
package clientip
