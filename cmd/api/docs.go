package main

// @title CelestialGuide API
// @version 1.0
// @description Backend API for astronomical observation planning: star lookup, sky maps, natal charts, solar events, astrophotography planning and site assessment.

// @contact.name API Support

// @license.name MIT

// @host localhost:8080
// @BasePath /

// @tag.name star
// @tag.description Star catalog lookup and visibility

// @tag.name map
// @tag.description Sky chart rendering

// @tag.name astrology
// @tag.description Natal charts, transits and commentary

// @tag.name solar
// @tag.description Sun and moon almanac

// @tag.name astrophotography
// @tag.description Imaging session planning

// @tag.name environment
// @tag.description Weather, geocoding and light pollution
