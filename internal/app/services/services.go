package services

// Services defined in this package:
// - AdminService: admin account management, credential verification, bootstrap admin
// - AuthService: login/logout state machine over the session store
// - StudentService: student records and natural-key lookups
// - CourseService: courses, rosters, enrollment and reconciliation
// - DepartmentService: departments and faculty/course membership lists
// - FacultyService: faculty members and course assignments
// - FeedbackService: contact-form feedback and resolution workflow
//
// Each service declares the minimal store interface it needs; the generic
// Mongo repository satisfies all of them.
