package v1

// Version of the REST API
const Version = "v1"

// BasePath is the prefix of every v1 route
const BasePath = "/api/" + Version + "/rsa"
