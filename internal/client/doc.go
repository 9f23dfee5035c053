// Package client talks to the ETSI NFV-SOL003 VNF lifecycle management API
// served by Tacker.
//
// Only the operation-occurrence resource is covered:
//
//	POST {endpoint}/vnflcm/v1/vnf_lcm_op_occs/{id}/rollback
//	POST {endpoint}/vnflcm/v1/vnf_lcm_op_occs/{id}/fail
//	POST {endpoint}/vnflcm/v1/vnf_lcm_op_occs/{id}/retry
//	POST {endpoint}/vnflcm/v1/vnf_lcm_op_occs/{id}/cancel
//	GET  {endpoint}/vnflcm/v1/vnf_lcm_op_occs/{id}
//	GET  {endpoint}/vnflcm/v1/vnf_lcm_op_occs[?filter=...]
//
// Responses are returned as loosely typed display.Record values so the
// presentation layer decides which fields are shown. Non-2xx responses become
// *APIError values carrying the decoded ProblemDetails.
//
// Every request carries a generated X-Openstack-Request-Id so a single CLI
// invocation can be traced in the server logs.
package client
