package constants

// Redis key prefixes
const (
	// KeyPromoCode caches promo rules: promo:<code>
	KeyPromoCode = "promo:%s"
	// KeyRouteEstimate caches route estimates: route:<pickup geohash>:<dropoff geohash>
	KeyRouteEstimate = "route:%s:%s"
	// KeyDashboard caches the admin dashboard aggregate
	KeyDashboard = "admin:dashboard"
)

// GeohashPrecision is the precision used for route estimate cache keys.
// Precision 6 buckets coordinates into roughly 1.2km x 0.6km cells.
const GeohashPrecision = 6
