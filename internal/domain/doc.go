// Package domain models USGS earthquake catalog data and the figures derived
// from it.
//
// # Data Source
//
// Records originate from the USGS FDSN event service GeoJSON feed at
// https://earthquake.usgs.gov/fdsnws/event/1/query.geojson. One query returns
// a catalog document: a metadata block (count, title, generation time) and a
// feature list ordered by the query's orderby parameter (ascending event time
// with the default query).
//
// # Feed Conventions
//
// Magnitude:
//
//	properties.mag, a dimensionless float. The feed publishes null for events
//	without a reviewed magnitude; such records cannot take part in
//	magnitude-based aggregation and fail with [ErrMalformedRecord].
//
// Coordinates:
//
//	geometry.coordinates holds [longitude, latitude, depth-km] per the GeoJSON
//	position rules. Only the (longitude, latitude) pair is modeled; depth is
//	discarded at the accessor.
//
// Event time:
//
//	properties.time, epoch milliseconds UTC. Calendar years are derived in an
//	explicit zone passed by the caller (configured, UTC by default) so a given
//	catalog yields the same grouping on every host.
//
// # Derived Figures
//
// Aggregations fail fast: a record missing a needed field stops the whole
// operation rather than skewing results by silent omission. The
// strongest-event scan keeps the first record on magnitude ties and resolves
// locations only for records that lead the scan. Per-year series are aligned
// slices with years ascending, ready for rendering.
package domain
