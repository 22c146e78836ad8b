// Package rates implements the vendor rate-sheet reconciliation feature.
//
// It receives a vendor's published rate sheet, reconciles it against the
// shared master routing table and produces the normalized rate file
// billing consumes. The same flow serves every supported vendor; what
// differs per vendor is declared in the schema registry (sheets, layouts,
// comparison strategy, price format) rather than coded into the flow.
//
// # Pipeline
//
//  1. The handler validates the upload against the vendor's declared
//     shape and submits a background job.
//  2. The service reads the declared sheets into normalized rows, fetches
//     master data through the TTL cache and filters it to the vendor.
//  3. The vendor's comparison strategy produces the ordered output
//     records (see the compare subpackage).
//  4. The CSV is staged to disk, archived to object storage and mailed
//     to the requester.
//
// # Subpackages
//
//   - vendor: the schema registry (one descriptor per supported vendor).
//   - sheet: declarative workbook reading into normalized rows.
//   - master: the routing reference table, its repository and TTL cache.
//   - compare: the per-vendor comparison strategies.
//   - output: rendering of output records into the final CSV.
//
// # HTTP Endpoints
//
//   - POST /rates/comparison : submit a rate sheet for reconciliation.
//   - GET  /rates/vendors    : list the registered vendors.
package rates
