package module

var paramErrorMsg = map[string]string{
	"missing_name": "The module cannot reconcile the route table as there is a missing or empty value for the name parameter. " +
		"Set name to the value of the Name tag identifying the table.",

	"missing_vpc_id": "The module cannot reconcile the route table as there is a missing or empty value for the vpc_id parameter. " +
		"Set vpc_id to the VPC the table belongs to.",

	"missing_routes": "The module cannot reconcile the route table as there is a missing or empty value for the routes parameter. " +
		"Set routes to the list of desired route entries, each with a cidr and exactly one of gateway or instance.",

	"invalid_state": "The module cannot reconcile the route table as the state parameter is not one of present or absent.",
}
