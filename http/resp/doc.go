/*
The resp package provides a high-level API for responding to HTTP requests with JSON,
translating errors raised while handling a request, such as invalid query params,
into the matching status code and payload.
*/
package resp
