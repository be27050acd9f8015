// Package ednevnik is a client for the e-Dnevnik grade portal (ocjene.skole.hr),
// which only serves html so every operation is a page request followed by scraping.
package ednevnik

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"time"

	"ednevnik/lib/restyutil"
	"ednevnik/lib/telemetry"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("ednevnik/pkg/ednevnik")

const (
	DefaultBaseUrl = "https://ocjene.skole.hr"
	DefaultTimeout = 30 * time.Second
)

const (
	report_client_login                = "client.login"
	report_client_fetch_classes        = "client.fetch-classes"
	report_client_fetch_courses        = "client.fetch-courses"
	report_client_fetch_course_details = "client.fetch-course-details"
	report_client_fetch_exams          = "client.fetch-exams"
	report_client_fetch_absences       = "client.fetch-absences"
	report_client_fetch_student_info   = "client.fetch-student-info"
	report_client_fetch_student_notes  = "client.fetch-student-notes"
)

type ClientOptions struct {
	Email    string
	Password string

	// BaseUrl defaults to DefaultBaseUrl.
	BaseUrl string
	// Timeout bounds every request, defaults to DefaultTimeout.
	Timeout time.Duration
	// BrowserTLS makes the TLS handshake look like a browser's.
	BrowserTLS bool

	// Telemetry defaults to telemetry.SlogAPI.
	Telemetry telemetry.API
	// HttpOutput receives every http exchange when set.
	HttpOutput restyutil.InstrumentOutput
}

// Client is one portal session.
//
// A Client is not safe for concurrent use: every request reads and rotates the
// session token, so calls must be made one after another.
type Client struct {
	email     string
	password  string
	session   *Session
	transport *transport
	tel       telemetry.API
}

func NewClient(opts ClientOptions) (*Client, error) {
	if opts.Email == "" || opts.Password == "" {
		return nil, fmt.Errorf("email and password are required")
	}
	if opts.BaseUrl == "" {
		opts.BaseUrl = DefaultBaseUrl
	}
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Telemetry == nil {
		opts.Telemetry = telemetry.SlogAPI{}
	}

	baseUrl, err := url.Parse(opts.BaseUrl)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}

	session, err := NewSession()
	if err != nil {
		return nil, err
	}

	tel := telemetry.NewScopedAPI("ednevnik", opts.Telemetry)
	return &Client{
		email:    opts.Email,
		password: opts.Password,
		session:  session,
		transport: newTransport(session, tel, transportOptions{
			baseUrl:    baseUrl,
			timeout:    opts.Timeout,
			browserTLS: opts.BrowserTLS,
			output:     opts.HttpOutput,
		}),
		tel: tel,
	}, nil
}

func (c *Client) Session() *Session {
	return c.session
}

// the portal answers requests of a logged out session by redirecting to the
// login page with a 200, which every extractor would read as an empty page.
func sessionExpired(res *resty.Response, doc *goquery.Document) bool {
	if res.RawResponse != nil && res.RawResponse.Request != nil &&
		res.RawResponse.Request.URL.Path == loginPagePath {
		return true
	}
	return doc.Find(`input[name="user_login"]`).Length() > 0
}

type page[T any] struct {
	name    string
	report  string
	path    string
	extract Extractor[T]
}

func fetchPage[T any](ctx context.Context, c *Client, p page[T]) (T, error) {
	ctx, span := tracer.Start(ctx, "client:"+p.report)
	defer span.End()
	span.SetAttributes(attribute.String("path", p.path))

	var zero T
	fail := func(err error) (T, error) {
		c.tel.ReportBroken(p.report, err, p.path)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return zero, &FetchError{Page: p.name, Err: err}
	}

	res, err := c.transport.request(ctx, p.path, nil)
	if err != nil {
		return fail(err)
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
	if err != nil {
		return fail(extractionError(p.name, fmt.Errorf("parse html: %w", err)))
	}
	if sessionExpired(res, doc) {
		return fail(extractionError(p.name, ErrSessionExpired))
	}
	out, err := p.extract(doc)
	if err != nil {
		return fail(err)
	}

	c.tel.ReportDebug("fetched page", p.name, p.path)
	return out, nil
}

func (c *Client) FetchClasses(ctx context.Context) ([]ClassYear, error) {
	return fetchPage(ctx, c, page[[]ClassYear]{
		name:    pageClassYears,
		report:  report_client_fetch_classes,
		path:    "/razredi/odabir",
		extract: ExtractClasses,
	})
}

func (c *Client) FetchCourses(ctx context.Context, classId int) ([]Course, error) {
	return fetchPage(ctx, c, page[[]Course]{
		name:    pageCourses,
		report:  report_client_fetch_courses,
		path:    fmt.Sprintf("/pregled/predmeti/%d", classId),
		extract: ExtractCourses,
	})
}

func (c *Client) FetchCourseDetails(ctx context.Context, courseId, subId int) (CourseDetails, error) {
	return fetchPage(ctx, c, page[CourseDetails]{
		name:    pageCourseDetails,
		report:  report_client_fetch_course_details,
		path:    fmt.Sprintf("/pregled/predmet/%d/%d", courseId, subId),
		extract: ExtractCourseDetails,
	})
}

func (c *Client) FetchExams(ctx context.Context, classId int) ([]Exam, error) {
	return fetchPage(ctx, c, page[[]Exam]{
		name:    pageExams,
		report:  report_client_fetch_exams,
		path:    fmt.Sprintf("/pregled/ispiti/%d/all", classId),
		extract: ExtractExams,
	})
}

func (c *Client) FetchAbsences(ctx context.Context, classId int) ([]Absence, error) {
	return fetchPage(ctx, c, page[[]Absence]{
		name:    pageAbsences,
		report:  report_client_fetch_absences,
		path:    fmt.Sprintf("/pregled/izostanci/%d", classId),
		extract: ExtractAbsences,
	})
}

func (c *Client) FetchStudentInfo(ctx context.Context, classId int) (StudentInfo, error) {
	return fetchPage(ctx, c, page[StudentInfo]{
		name:    pageStudentInfo,
		report:  report_client_fetch_student_info,
		path:    fmt.Sprintf("/pregled/osobni_podaci/%d", classId),
		extract: ExtractStudentInfo,
	})
}

func (c *Client) FetchStudentNotes(ctx context.Context, classId int) (StudentNotes, error) {
	return fetchPage(ctx, c, page[StudentNotes]{
		name:    pageStudentNotes,
		report:  report_client_fetch_student_notes,
		path:    fmt.Sprintf("/pregled/biljeske/%d", classId),
		extract: ExtractStudentNotes,
	})
}
