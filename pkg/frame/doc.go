// Package frame defines the frames document read by framemap.
//
// A [Document] is an ordered list of [Frame] values. Each frame is one
// snapshot of a route or event timeline: a set of point [Marker]s (called
// tags in the JSON) and two-point [LineSegment]s. A frame has no identifier
// of its own; its 0-based position in the document is used for anchors and
// output file names.
//
// # Input format
//
//	{
//	  "frames": [
//	    {
//	      "description": "Ambulance dispatched",
//	      "tags": [
//	        {"position": [51.5, -0.1], "icon": "ambulance", "color": "#FF0000", "description": "Unit 7"}
//	      ],
//	      "lines": [
//	        {"start": [51.5, -0.1], "end": [51.6, -0.1], "color": "#0000FF"}
//	      ]
//	    }
//	  ]
//	}
//
// Positions are [latitude, longitude] arrays in decimal degrees. Marker icon,
// color and description are optional; line color is not.
//
// [Decode] and [Load] validate structure only (required keys, array shapes).
// Coordinates are not range-checked.
package frame
