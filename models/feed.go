// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Pagination is the paging block returned with every feed page.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// FeedPage is the body of GET {base}/inventory.
type FeedPage struct {
	Vehicles   []RemoteVehicle `json:"vehicles"`
	Pagination Pagination      `json:"pagination"`
}

// FeedResult is the complete, ordered inventory of one dealer, assembled
// only after every page was fetched successfully.
type FeedResult struct {
	Vehicles   []RemoteVehicle
	Pagination Pagination
	Pages      int
}

// FeedProbe is the outcome of a connectivity check that fetched a single
// record.
type FeedProbe struct {
	Pagination Pagination
	Sample     []RemoteVehicle
}
