package main

// General API documentation for swaggo. The rendered document lives in
// internal/apidocs and is served at /swagger.json.
//
// @title           hydrocore API
// @version         1.0
// @description     Water potability prediction over a pre-trained binary classifier.
//
// @contact.name   hydrocore maintainers
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
