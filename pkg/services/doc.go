// Package services provides service name lookup for well-known ports.
//
// GetName maps a port number to a short service name. The JSON exporter and
// the UDP response parser use it to show human-readable service names
// instead of just raw port numbers.
//
// Example usage:
//
//	fmt.Println(services.GetName(80))    // Output: http
//	fmt.Println(services.GetName(54321)) // Output: unknown
//
// Service Database:
//
// The table covers 17 common TCP ports: FTP, SSH, Telnet, SMTP, DNS, HTTP,
// POP3, IMAP, HTTPS, SMB, MySQL, RDP, PostgreSQL, Redis, the HTTP/HTTPS
// alternates 8080 and 8443, and MongoDB. There is no separate UDP table:
// a port gets the same name whatever the protocol, and UDP ports such as
// 67 (DHCP), 123 (NTP) or 161 (SNMP) return "unknown".
//
// Performance:
//
// GetName builds its map on each call and looks the port up in it.
package services
