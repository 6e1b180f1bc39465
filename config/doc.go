// Package config assembles [bole] logging hierarchies from declarative
// YAML documents.
//
// A document names its sinks once and wires them to loggers by name. All
// keys are optional; an empty document configures nothing.
//
//	root:
//	  level: warn
//	  sinks: [console]
//
//	sinks:
//	  console:
//	    writer: stderr
//	    color: true
//	    format:
//	      - {field: level, width: 5, justify: left}
//	      - {text: " - "}
//	      - {field: message}
//	  audit:
//	    writer: file
//	    path: /var/log/app.log
//	    level: info
//	    filter:
//	      default: warn
//	      rules:
//	        db: debug
//	        db.pool: trace
//
//	loggers:
//	  db:
//	    level: debug
//	  net.rpc:
//	    level: inherit
//	    additive: false
//	    sinks: [audit]
//
// [Load] decodes a document, and [Config.Apply] realizes it against a
// hierarchy. [Config.Hierarchy] is shorthand for applying to a fresh one.
// Stamp elements accept named layouts ("rfc3339", "kitchen", "datetime",
// ...) or any verbatim Go time layout; see [ResolveLayout]. A format
// element list describes one record: the assembled template is newline
// terminated.
package config
