// Package stations is a static lookup table for Indian railway stations.
// It backs the search-form autocomplete and is not part of the pricing or
// booking core; trains reference stations by free-text name, not by code.
package stations

import "strings"

type Station struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	City  string `json:"city"`
	State string `json:"state"`
}

var directory = []Station{
	// Major metro cities
	{Code: "NDLS", Name: "New Delhi", City: "Delhi", State: "Delhi"},
	{Code: "CSTM", Name: "Mumbai CST", City: "Mumbai", State: "Maharashtra"},
	{Code: "BCT", Name: "Mumbai Central", City: "Mumbai", State: "Maharashtra"},
	{Code: "LTT", Name: "Lokmanya Tilak Terminus", City: "Mumbai", State: "Maharashtra"},
	{Code: "MAS", Name: "Chennai Central", City: "Chennai", State: "Tamil Nadu"},
	{Code: "SBC", Name: "KSR Bengaluru", City: "Bengaluru", State: "Karnataka"},
	{Code: "HWH", Name: "Howrah Junction", City: "Kolkata", State: "West Bengal"},
	{Code: "KOAA", Name: "Kolkata", City: "Kolkata", State: "West Bengal"},
	{Code: "SC", Name: "Secunderabad Junction", City: "Hyderabad", State: "Telangana"},
	{Code: "HYB", Name: "Hyderabad Deccan", City: "Hyderabad", State: "Telangana"},

	// North
	{Code: "AGC", Name: "Agra Cantt", City: "Agra", State: "Uttar Pradesh"},
	{Code: "LKO", Name: "Lucknow", City: "Lucknow", State: "Uttar Pradesh"},
	{Code: "CNB", Name: "Kanpur Central", City: "Kanpur", State: "Uttar Pradesh"},
	{Code: "PNBE", Name: "Patna Junction", City: "Patna", State: "Bihar"},
	{Code: "ASR", Name: "Amritsar Junction", City: "Amritsar", State: "Punjab"},
	{Code: "JAT", Name: "Jammu Tawi", City: "Jammu", State: "Jammu and Kashmir"},
	{Code: "CDG", Name: "Chandigarh", City: "Chandigarh", State: "Chandigarh"},
	{Code: "DDN", Name: "Dehradun", City: "Dehradun", State: "Uttarakhand"},
	{Code: "JP", Name: "Jaipur Junction", City: "Jaipur", State: "Rajasthan"},
	{Code: "JU", Name: "Jodhpur Junction", City: "Jodhpur", State: "Rajasthan"},

	// West
	{Code: "ADI", Name: "Ahmedabad Junction", City: "Ahmedabad", State: "Gujarat"},
	{Code: "ST", Name: "Surat", City: "Surat", State: "Gujarat"},
	{Code: "BRC", Name: "Vadodara Junction", City: "Vadodara", State: "Gujarat"},
	{Code: "PUNE", Name: "Pune Junction", City: "Pune", State: "Maharashtra"},
	{Code: "NGP", Name: "Nagpur Junction", City: "Nagpur", State: "Maharashtra"},

	// South
	{Code: "CBE", Name: "Coimbatore Junction", City: "Coimbatore", State: "Tamil Nadu"},
	{Code: "MDU", Name: "Madurai Junction", City: "Madurai", State: "Tamil Nadu"},
	{Code: "TVC", Name: "Thiruvananthapuram Central", City: "Thiruvananthapuram", State: "Kerala"},
	{Code: "ERS", Name: "Ernakulam Junction", City: "Kochi", State: "Kerala"},
	{Code: "MYS", Name: "Mysuru Junction", City: "Mysuru", State: "Karnataka"},
	{Code: "UBL", Name: "Hubballi Junction", City: "Hubballi", State: "Karnataka"},
	{Code: "BZA", Name: "Vijayawada Junction", City: "Vijayawada", State: "Andhra Pradesh"},
	{Code: "VSKP", Name: "Visakhapatnam", City: "Visakhapatnam", State: "Andhra Pradesh"},

	// East
	{Code: "BBS", Name: "Bhubaneswar", City: "Bhubaneswar", State: "Odisha"},
	{Code: "GHY", Name: "Guwahati", City: "Guwahati", State: "Assam"},
	{Code: "RNC", Name: "Ranchi Junction", City: "Ranchi", State: "Jharkhand"},
	{Code: "TATA", Name: "Tatanagar Junction", City: "Jamshedpur", State: "Jharkhand"},

	// Central
	{Code: "BPL", Name: "Bhopal Junction", City: "Bhopal", State: "Madhya Pradesh"},
	{Code: "JBP", Name: "Jabalpur", City: "Jabalpur", State: "Madhya Pradesh"},
	{Code: "R", Name: "Raipur Junction", City: "Raipur", State: "Chhattisgarh"},
}

// All returns the full directory.
func All() []Station {
	out := make([]Station, len(directory))
	copy(out, directory)
	return out
}

// Search matches the query case-insensitively against station code, name
// and city. Prefix matches on code or name sort before plain substring
// matches so typing "New" offers "New Delhi" first. Empty query matches
// nothing; limit <= 0 means no limit.
func Search(query string, limit int) []Station {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var prefix, substr []Station
	for _, st := range directory {
		code := strings.ToLower(st.Code)
		name := strings.ToLower(st.Name)
		city := strings.ToLower(st.City)

		switch {
		case strings.HasPrefix(code, q) || strings.HasPrefix(name, q):
			prefix = append(prefix, st)
		case strings.Contains(name, q) || strings.Contains(city, q):
			substr = append(substr, st)
		}
	}

	results := append(prefix, substr...)
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}
